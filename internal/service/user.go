// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/auth"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/email/mailer"
	"github.com/studyconnect/backend/internal/model"
	"github.com/studyconnect/backend/internal/repository"

	emailsvc "github.com/studyconnect/backend/internal/email"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailService   *emailsvc.Service
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailService *emailsvc.Service,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailService:   emailService,
		validate:       validator.New(),
	}
}

type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Name        string `json:"name" validate:"required"`
	Year        string `json:"year"`
	Course      string `json:"course"`
	Institution string `json:"institution"`
}

type AuthOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates an account and returns a signed token for it.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:       input.Email,
		Password:    hashed,
		Name:        input.Name,
		Year:        input.Year,
		Course:      input.Course,
		Institution: input.Institution,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	// Welcome mail is best effort; registration never fails on it.
	if s.emailService != nil {
		if err := mailer.SendWelcomeEmail(s.emailService, user.Email, user.Name); err != nil {
			slog.ErrorContext(ctx, "sending welcome email", "error", err, "userID", user.ID)
		}
	}

	return &AuthOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns a signed token.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &AuthOutput{User: user, Token: token}, nil
}

func (s *UserService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}

type UpdateProfileInput struct {
	Name        string `json:"name" validate:"required"`
	Year        string `json:"year"`
	Course      string `json:"course"`
	Institution string `json:"institution"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Year = input.Year
	user.Course = input.Course
	user.Institution = input.Institution

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
