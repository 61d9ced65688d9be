// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email       string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Year        string    `gorm:"type:text" json:"year"`
	Course      string    `gorm:"type:text" json:"course"`
	Institution string    `gorm:"type:text" json:"institution"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserProfile is the public projection of a user attached to join
// requests, member rosters, messages and forum posts.
type UserProfile struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Year   string    `json:"year"`
	Course string    `json:"course"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Year:   u.Year,
		Course: u.Course,
	}
}
