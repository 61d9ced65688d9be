package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/studyconnect/backend/internal/auth"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/mocks"
	"github.com/studyconnect/backend/internal/model"
	"github.com/studyconnect/backend/internal/service"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)

	input := service.RegisterInput{
		Email:    "dana@example.edu",
		Password: "correct_password",
		Name:     "Dana",
		Year:     "2",
		Course:   "Computer Science",
	}

	t.Run("creates the account and returns a token", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User) error {
				assert.Equal(t, input.Email, user.Email)
				assert.NotEqual(t, input.Password, user.Password, "password must be stored hashed")
				user.ID = uuid.New()
				return nil
			})

		svc := service.NewUserService(repo, hasher, tokens, nil)
		output, err := svc.Register(context.Background(), input)

		assert.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, input.Email, output.User.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(&model.User{Email: input.Email}, nil)

		svc := service.NewUserService(repo, hasher, tokens, nil)
		_, err := svc.Register(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		bad := input
		bad.Password = "abc"

		svc := service.NewUserService(repo, hasher, tokens, nil)
		_, err := svc.Register(context.Background(), bad)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)

	hashed, _ := hasher.Hash("correct_password")
	user := &model.User{
		ID:       uuid.New(),
		Email:    "dana@example.edu",
		Password: hashed,
		Name:     "Dana",
	}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := service.NewUserService(repo, hasher, tokens, nil)
		output, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "correct_password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, output.Token)
		assert.Equal(t, user.ID, output.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := service.NewUserService(repo, hasher, tokens, nil)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "wrong_password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.edu").Return(nil, domain.ErrUserNotFound)

		svc := service.NewUserService(repo, hasher, tokens, nil)
		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "nobody@example.edu",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)
	userID := uuid.New()

	t.Run("applies the editable fields", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), userID).Return(&model.User{ID: userID, Name: "Dana"}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User) error {
				assert.Equal(t, "Dana M.", user.Name)
				assert.Equal(t, "3", user.Year)
				return nil
			})

		svc := service.NewUserService(repo, hasher, tokens, nil)
		user, err := svc.UpdateProfile(context.Background(), userID, service.UpdateProfileInput{
			Name:   "Dana M.",
			Year:   "3",
			Course: "Computer Science",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Dana M.", user.Name)
	})
}
