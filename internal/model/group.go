// internal/model/group.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Subject      string    `gorm:"type:text;not null" json:"subject"`
	SmallDesc    string    `gorm:"type:text" json:"smallDesc"`
	Description  string    `gorm:"type:text" json:"description"`
	Date         string    `gorm:"type:text" json:"date"`
	StartTime    time.Time `gorm:"not null" json:"startTime"`
	EndTime      time.Time `gorm:"not null" json:"endTime"`
	Capacity     int       `gorm:"not null;default:0" json:"capacity"`
	TypeOfStudy  string    `gorm:"type:text" json:"typeOfStudy"`
	ScheduleType string    `gorm:"type:text" json:"scheduleType"`
	Language     string    `gorm:"type:text" json:"language"`
	Location     string    `gorm:"type:text" json:"location"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null;index" json:"createdBy"`
	Tags         []Tag     `gorm:"many2many:group_tags" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:citext;uniqueIndex;not null" json:"name"`
}

// GroupSummary is a group joined with its tag names and the count of
// approved members, the shape the listing endpoints return.
type GroupSummary struct {
	Group
	TagNames    []string `json:"tags"`
	MemberCount int64    `json:"member_count"`
}
