// internal/model/question.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Subject     string    `gorm:"type:text" json:"subject,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"questionId"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// QuestionSummary is a question joined with its author and answer count.
type QuestionSummary struct {
	Question
	User        UserProfile `json:"user"`
	AnswerCount int64       `json:"answer_count"`
}

// QuestionDetail is a question with its author and full answer thread.
type QuestionDetail struct {
	Question
	User    UserProfile   `json:"user"`
	Answers []ForumAnswer `json:"answers"`
}

// ForumAnswer is an answer joined with its author.
type ForumAnswer struct {
	Answer
	User UserProfile `json:"user"`
}
