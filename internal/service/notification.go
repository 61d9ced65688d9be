// internal/service/notification.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/model"
	"github.com/studyconnect/backend/internal/repository"
)

// feedLimit caps the notification feed; older entries stay in the store
// but are not surfaced.
const feedLimit = 20

// NotificationService derives and serves the per-user notification feed.
type NotificationService struct {
	notifications repository.NotificationRepositoryIface
}

func NewNotificationService(notifications repository.NotificationRepositoryIface) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Notify persists a single notification row.
func (s *NotificationService) Notify(ctx context.Context, n *model.Notification) error {
	return s.notifications.Create(ctx, n)
}

// ListMine returns the user's newest notifications, newest first.
func (s *NotificationService) ListMine(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.notifications.FindByUser(ctx, userID, feedLimit)
}

// MarkRead flags one notification as read. A notification belonging to a
// different user is indistinguishable from a missing one.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*model.Notification, error) {
	notification, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification.UserID != userID {
		return nil, domain.ErrNotificationNotFound
	}

	if err := s.notifications.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	notification.Read = true
	return notification, nil
}

// MarkAllRead flags every unread notification for the user; idempotent.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifications.MarkAllRead(ctx, userID)
}
