// internal/service/forum.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/model"
	"github.com/studyconnect/backend/internal/repository"
)

// ForumService runs the help forum: questions, answers, and the
// forum_answer notification that answers produce.
type ForumService struct {
	questions     repository.QuestionRepositoryIface
	users         repository.UserRepositoryIface
	notifications *NotificationService
	validate      *validator.Validate
}

func NewForumService(
	questions repository.QuestionRepositoryIface,
	users repository.UserRepositoryIface,
	notifications *NotificationService,
) *ForumService {
	return &ForumService{
		questions:     questions,
		users:         users,
		notifications: notifications,
		validate:      validator.New(),
	}
}

func (s *ForumService) ListQuestions(ctx context.Context) ([]model.QuestionSummary, error) {
	return s.questions.FindAll(ctx)
}

func (s *ForumService) GetQuestion(ctx context.Context, id uuid.UUID) (*model.QuestionDetail, error) {
	return s.questions.FindDetail(ctx, id)
}

func (s *ForumService) SearchQuestions(ctx context.Context, query string) ([]model.QuestionSummary, error) {
	return s.questions.Search(ctx, query)
}

type QuestionInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Subject     string `json:"subject"`
}

func (s *ForumService) CreateQuestion(ctx context.Context, userID uuid.UUID, input QuestionInput) (*model.QuestionSummary, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	question := &model.Question{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Subject:     input.Subject,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading author: %w", err)
	}
	return &model.QuestionSummary{Question: *question, User: author.Profile()}, nil
}

// DeleteQuestion removes a question and its answers; author only.
func (s *ForumService) DeleteQuestion(ctx context.Context, userID, questionID uuid.UUID) error {
	question, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return err
	}
	if question.UserID != userID {
		return domain.ErrForbidden
	}
	return s.questions.Delete(ctx, questionID)
}

// AnswerQuestion posts an answer and notifies the question's owner,
// unless they answered their own question.
func (s *ForumService) AnswerQuestion(ctx context.Context, userID, questionID uuid.UUID, content string) (*model.ForumAnswer, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: answer content is required", domain.ErrInvalidInput)
	}

	question, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	answer := &model.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Content:    content,
	}
	if err := s.questions.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading answerer: %w", err)
	}

	if question.UserID != userID {
		n := &model.Notification{
			UserID:     question.UserID,
			Message:    fmt.Sprintf("%s answered your question: %q", author.Name, question.Title),
			QuestionID: &questionID,
			Type:       model.NotificationForumAnswer,
		}
		if err := s.notifications.Notify(ctx, n); err != nil {
			slog.ErrorContext(ctx, "writing forum_answer notification", "error", err, "questionID", questionID)
		}
	}

	return &model.ForumAnswer{Answer: *answer, User: author.Profile()}, nil
}

// DeleteAnswer removes an answer; author only.
func (s *ForumService) DeleteAnswer(ctx context.Context, userID, answerID uuid.UUID) error {
	answer, err := s.questions.FindAnswerByID(ctx, answerID)
	if err != nil {
		return err
	}
	if answer.UserID != userID {
		return domain.ErrForbidden
	}
	return s.questions.DeleteAnswer(ctx, answerID)
}
