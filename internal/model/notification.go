// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationInfo        NotificationType = "info"
	NotificationUpdate      NotificationType = "update"
	NotificationForumAnswer NotificationType = "forum_answer"
)

type Notification struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"userId"`
	Message    string           `gorm:"type:text;not null" json:"message"`
	GroupID    *uuid.UUID       `gorm:"type:uuid" json:"groupId,omitempty"`
	QuestionID *uuid.UUID       `gorm:"type:uuid" json:"questionId,omitempty"`
	Type       NotificationType `gorm:"type:text;not null;default:'info'" json:"type"`
	Read       bool             `gorm:"not null;default:false" json:"read"`
	CreatedAt  time.Time        `json:"createdAt"`
}
