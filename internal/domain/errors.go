// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Group-related errors
	ErrGroupNotFound = errors.New("group not found")
	ErrNotGroupOwner = errors.New("only the group owner may do this")
	ErrNotGroupAdmin = errors.New("only a group admin may do this")

	// Membership-related errors
	ErrRequestNotFound    = errors.New("join request not found")
	ErrDuplicateRequest   = errors.New("request already sent or you are already a member")
	ErrInvalidDecision    = errors.New("decision must be approved or rejected")
	ErrCannotKickSelf     = errors.New("you cannot kick yourself from the group")
	ErrMembershipRequired = errors.New("approved group membership required")

	// Notification-related errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Chat-related errors
	ErrEmptyMessage = errors.New("message content is empty")

	// Forum-related errors
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
)
