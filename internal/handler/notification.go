// internal/handler/notification.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListMine(r.Context(), userID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	notificationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	notification, err := h.notificationService.MarkRead(r.Context(), userID, notificationID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), userID); err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
