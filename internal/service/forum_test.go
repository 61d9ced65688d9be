package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/mocks"
	"github.com/studyconnect/backend/internal/model"
	"github.com/studyconnect/backend/internal/service"
	"go.uber.org/mock/gomock"
)

func TestAnswerQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	askerID := uuid.New()
	answererID := uuid.New()
	questionID := uuid.New()

	question := func() *model.Question {
		return &model.Question{
			ID:     questionID,
			UserID: askerID,
			Title:  "How do I prove this by induction?",
		}
	}

	t.Run("answer notifies the question owner", func(t *testing.T) {
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		questionRepo.EXPECT().FindByID(gomock.Any(), questionID).Return(question(), nil)
		questionRepo.EXPECT().
			CreateAnswer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, answer *model.Answer) error {
				assert.Equal(t, "Start with the base case n=1.", answer.Content)
				answer.ID = uuid.New()
				return nil
			})
		userRepo.EXPECT().FindByID(gomock.Any(), answererID).Return(&model.User{ID: answererID, Name: "Sam"}, nil)
		notificationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.Notification) error {
				assert.Equal(t, askerID, n.UserID)
				assert.Equal(t, model.NotificationForumAnswer, n.Type)
				assert.Contains(t, n.Message, "Sam")
				assert.Contains(t, n.Message, question().Title)
				return nil
			})

		svc := service.NewForumService(questionRepo, userRepo, service.NewNotificationService(notificationRepo))
		answer, err := svc.AnswerQuestion(context.Background(), answererID, questionID, "  Start with the base case n=1.  ")

		assert.NoError(t, err)
		assert.Equal(t, "Sam", answer.User.Name)
	})

	t.Run("answering your own question stays silent", func(t *testing.T) {
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		questionRepo.EXPECT().FindByID(gomock.Any(), questionID).Return(question(), nil)
		questionRepo.EXPECT().CreateAnswer(gomock.Any(), gomock.Any()).Return(nil)
		userRepo.EXPECT().FindByID(gomock.Any(), askerID).Return(&model.User{ID: askerID, Name: "Ana"}, nil)

		svc := service.NewForumService(questionRepo, userRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.AnswerQuestion(context.Background(), askerID, questionID, "Never mind, solved it.")

		assert.NoError(t, err)
	})

	t.Run("empty answer content", func(t *testing.T) {
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		svc := service.NewForumService(questionRepo, userRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.AnswerQuestion(context.Background(), answererID, questionID, "   ")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestDeleteQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	questionID := uuid.New()

	t.Run("author deletes the question", func(t *testing.T) {
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		questionRepo.EXPECT().FindByID(gomock.Any(), questionID).Return(&model.Question{ID: questionID, UserID: authorID}, nil)
		questionRepo.EXPECT().Delete(gomock.Any(), questionID).Return(nil)

		svc := service.NewForumService(questionRepo, userRepo, service.NewNotificationService(notificationRepo))
		assert.NoError(t, svc.DeleteQuestion(context.Background(), authorID, questionID))
	})

	t.Run("others are forbidden", func(t *testing.T) {
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		questionRepo.EXPECT().FindByID(gomock.Any(), questionID).Return(&model.Question{ID: questionID, UserID: authorID}, nil)

		svc := service.NewForumService(questionRepo, userRepo, service.NewNotificationService(notificationRepo))
		err := svc.DeleteQuestion(context.Background(), uuid.New(), questionID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestCreateQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorID := uuid.New()

	t.Run("requires title and description", func(t *testing.T) {
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		svc := service.NewForumService(questionRepo, userRepo, service.NewNotificationService(notificationRepo))
		_, err := svc.CreateQuestion(context.Background(), authorID, service.QuestionInput{Title: "Missing description"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("returns the stored question with the author profile", func(t *testing.T) {
		questionRepo := mocks.NewMockQuestionRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		questionRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, question *model.Question) error {
				question.ID = uuid.New()
				return nil
			})
		userRepo.EXPECT().FindByID(gomock.Any(), authorID).Return(&model.User{ID: authorID, Name: "Ana"}, nil)

		svc := service.NewForumService(questionRepo, userRepo, service.NewNotificationService(notificationRepo))
		summary, err := svc.CreateQuestion(context.Background(), authorID, service.QuestionInput{
			Title:       "Pointers vs values in method receivers?",
			Description: "When should a receiver be a pointer?",
			Subject:     "Programming",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ana", summary.User.Name)
	})
}
