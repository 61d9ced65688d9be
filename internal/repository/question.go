// internal/repository/question.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/domain"
	"github.com/studyconnect/backend/internal/model"
	"gorm.io/gorm"
)

type QuestionRepositoryIface interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
	FindAll(ctx context.Context) ([]model.QuestionSummary, error)
	FindDetail(ctx context.Context, id uuid.UUID) (*model.QuestionDetail, error)
	Search(ctx context.Context, query string) ([]model.QuestionSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateAnswer(ctx context.Context, answer *model.Answer) error
	FindAnswerByID(ctx context.Context, id uuid.UUID) (*model.Answer, error)
	DeleteAnswer(ctx context.Context, id uuid.UUID) error
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, question *model.Question) error {
	result := r.db.WithContext(ctx).Create(question)
	if result.Error != nil {
		return fmt.Errorf("failed to create question: %w", result.Error)
	}
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	var question model.Question
	result := r.db.WithContext(ctx).First(&question, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", result.Error)
	}
	return &question, nil
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]model.QuestionSummary, error) {
	var questions []model.Question
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&questions)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find questions: %w", result.Error)
	}
	return r.summarize(ctx, questions)
}

func (r *QuestionRepository) Search(ctx context.Context, query string) ([]model.QuestionSummary, error) {
	var questions []model.Question
	like := "%" + query + "%"
	result := r.db.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ? OR subject ILIKE ?", like, like, like).
		Order("created_at DESC").
		Find(&questions)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to search questions: %w", result.Error)
	}
	return r.summarize(ctx, questions)
}

func (r *QuestionRepository) FindDetail(ctx context.Context, id uuid.UUID) (*model.QuestionDetail, error) {
	question, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var answers []model.Answer
	result := r.db.WithContext(ctx).
		Where("question_id = ?", id).
		Order("created_at ASC").
		Find(&answers)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find answers: %w", result.Error)
	}

	ids := []uuid.UUID{question.UserID}
	for _, a := range answers {
		ids = append(ids, a.UserID)
	}
	profiles, err := r.profiles(ctx, ids)
	if err != nil {
		return nil, err
	}

	detail := model.QuestionDetail{
		Question: *question,
		User:     profiles[question.UserID],
		Answers:  make([]model.ForumAnswer, 0, len(answers)),
	}
	for _, a := range answers {
		detail.Answers = append(detail.Answers, model.ForumAnswer{Answer: a, User: profiles[a.UserID]})
	}
	return &detail, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return fmt.Errorf("deleting answers: %w", err)
		}
		if err := tx.Delete(&model.Question{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting question: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *QuestionRepository) CreateAnswer(ctx context.Context, answer *model.Answer) error {
	result := r.db.WithContext(ctx).Create(answer)
	if result.Error != nil {
		return fmt.Errorf("failed to create answer: %w", result.Error)
	}
	return nil
}

func (r *QuestionRepository) FindAnswerByID(ctx context.Context, id uuid.UUID) (*model.Answer, error) {
	var answer model.Answer
	result := r.db.WithContext(ctx).First(&answer, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to find answer: %w", result.Error)
	}
	return &answer, nil
}

func (r *QuestionRepository) DeleteAnswer(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Answer{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete answer: %w", result.Error)
	}
	return nil
}

func (r *QuestionRepository) summarize(ctx context.Context, questions []model.Question) ([]model.QuestionSummary, error) {
	summaries := make([]model.QuestionSummary, 0, len(questions))
	if len(questions) == 0 {
		return summaries, nil
	}

	ids := make([]uuid.UUID, 0, len(questions))
	userIDs := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
		userIDs = append(userIDs, q.UserID)
	}

	type answerCount struct {
		QuestionID uuid.UUID
		Count      int64
	}
	var counts []answerCount
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Select("question_id, count(*) as count").
		Where("question_id IN ?", ids).
		Group("question_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}
	byQuestion := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		byQuestion[c.QuestionID] = c.Count
	}

	profiles, err := r.profiles(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	for _, q := range questions {
		summaries = append(summaries, model.QuestionSummary{
			Question:    q,
			User:        profiles[q.UserID],
			AnswerCount: byQuestion[q.ID],
		})
	}
	return summaries, nil
}

func (r *QuestionRepository) profiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.UserProfile, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find question users: %w", err)
	}
	profiles := make(map[uuid.UUID]model.UserProfile, len(users))
	for i := range users {
		profiles[users[i].ID] = users[i].Profile()
	}
	return profiles, nil
}
