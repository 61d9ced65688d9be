// internal/service/chat.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/model"
	"github.com/studyconnect/backend/internal/repository"
)

// ChatService is the group chat relay: an append-only message log scoped
// to a group. Both reading and sending require an approved membership;
// the chat is not public.
type ChatService struct {
	groups      repository.GroupRepositoryIface
	memberships repository.MembershipRepositoryIface
	messages    repository.MessageRepositoryIface
	users       repository.UserRepositoryIface
}

func NewChatService(
	groups repository.GroupRepositoryIface,
	memberships repository.MembershipRepositoryIface,
	messages repository.MessageRepositoryIface,
	users repository.UserRepositoryIface,
) *ChatService {
	return &ChatService{
		groups:      groups,
		memberships: memberships,
		messages:    messages,
		users:       users,
	}
}

// ListMessages returns the group's message log in persistence order.
func (s *ChatService) ListMessages(ctx context.Context, requesterID, groupID uuid.UUID) ([]model.ChatMessage, error) {
	if err := s.requireApproved(ctx, requesterID, groupID); err != nil {
		return nil, err
	}
	return s.messages.FindByGroup(ctx, groupID)
}

// SendMessage appends to the group's log and returns the stored message
// joined with the sender's profile.
func (s *ChatService) SendMessage(ctx context.Context, senderID, groupID uuid.UUID, content string) (*model.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	if err := s.requireApproved(ctx, senderID, groupID); err != nil {
		return nil, err
	}

	message := &model.Message{
		GroupID:  groupID,
		SenderID: senderID,
		Content:  content,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("loading sender: %w", err)
	}
	return &model.ChatMessage{Message: *message, Sender: sender.Profile()}, nil
}

func (s *ChatService) requireApproved(ctx context.Context, userID, groupID uuid.UUID) error {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		return err
	}

	approved, err := s.memberships.HasApproved(ctx, userID, groupID)
	if err != nil {
		return fmt.Errorf("checking membership: %w", err)
	}
	if !approved {
		return domain.ErrMembershipRequired
	}
	return nil
}
