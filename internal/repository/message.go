// internal/repository/message.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/model"
	"gorm.io/gorm"
)

type MessageRepositoryIface interface {
	Create(ctx context.Context, message *model.Message) error
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]model.ChatMessage, error)
}

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	result := r.db.WithContext(ctx).Create(message)
	if result.Error != nil {
		return fmt.Errorf("failed to create message: %w", result.Error)
	}
	return nil
}

// FindByGroup returns the group's full message log in persistence order,
// each joined with the sender's public profile.
func (r *MessageRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]model.ChatMessage, error) {
	var messages []model.Message
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&messages)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find messages: %w", result.Error)
	}

	ids := make([]uuid.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.SenderID)
	}

	profiles := make(map[uuid.UUID]model.UserProfile, len(ids))
	if len(ids) > 0 {
		var users []model.User
		if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
			return nil, fmt.Errorf("failed to find senders: %w", err)
		}
		for i := range users {
			profiles[users[i].ID] = users[i].Profile()
		}
	}

	chat := make([]model.ChatMessage, 0, len(messages))
	for _, m := range messages {
		chat = append(chat, model.ChatMessage{Message: m, Sender: profiles[m.SenderID]})
	}
	return chat, nil
}
