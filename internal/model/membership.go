// internal/model/membership.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type MembershipRole string

const (
	RoleAdmin  MembershipRole = "admin"
	RoleMember MembershipRole = "member"
)

type MembershipStatus string

const (
	StatusPending  MembershipStatus = "pending"
	StatusApproved MembershipStatus = "approved"
	StatusRejected MembershipStatus = "rejected"
)

// Membership is the join row linking a user to a group. At most one row
// exists per (user, group) pair; the composite unique index is what turns
// concurrent duplicate join requests into a store-level conflict.
type Membership struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_group" json:"userId"`
	GroupID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_group;index" json:"groupId"`
	Role      MembershipRole   `gorm:"type:text;not null;default:'member'" json:"role"`
	Status    MembershipStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt time.Time        `json:"joinedAt"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// JoinRequest is a pending membership joined with the requesting user's
// profile, and, for the cross-group owner view, the target group.
type JoinRequest struct {
	Membership
	User  UserProfile `json:"user"`
	Group *GroupRef   `json:"group,omitempty"`
}

// GroupRef identifies the target group on a cross-group request listing.
type GroupRef struct {
	ID      uuid.UUID `json:"id"`
	Subject string    `json:"subject"`
}

// Member is an approved membership joined with the member's profile.
type Member struct {
	UserProfile
	Role     MembershipRole `json:"role"`
	JoinedAt time.Time      `json:"joinedAt"`
}
