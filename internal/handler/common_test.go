package handler

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studyconnect/backend/internal/domain"
)

func TestHandleDomainError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", domain.ErrInvalidInput, 400},
		{"invalid decision", domain.ErrInvalidDecision, 400},
		{"self kick", domain.ErrCannotKickSelf, 400},
		{"empty message", domain.ErrEmptyMessage, 400},
		{"invalid credentials", domain.ErrInvalidCredentials, 401},
		{"not owner", domain.ErrNotGroupOwner, 403},
		{"not admin", domain.ErrNotGroupAdmin, 403},
		{"membership required", domain.ErrMembershipRequired, 403},
		{"group missing", domain.ErrGroupNotFound, 404},
		{"request missing", domain.ErrRequestNotFound, 404},
		{"notification missing", domain.ErrNotificationNotFound, 404},
		{"duplicate request", domain.ErrDuplicateRequest, 409},
		{"email taken", domain.ErrEmailAlreadyExists, 409},
		{"unknown error", errors.New("disk on fire"), 500},
		{"wrapped sentinel", errors.Join(errors.New("creating membership"), domain.ErrDuplicateRequest), 409},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleDomainError(rec, tc.err)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestInternalErrorLeaksNoDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	handleDomainError(rec, errors.New("dsn=postgres://user:hunter2@db/prod"))

	assert.Equal(t, 500, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")
}
