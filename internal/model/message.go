// internal/model/message.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in a group's append-only chat log.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	GroupID   uuid.UUID `gorm:"type:uuid;not null;index" json:"groupId"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null" json:"senderId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatMessage is a message joined with the sender's public profile.
type ChatMessage struct {
	Message
	Sender UserProfile `json:"sender"`
}
