// internal/handler/chat.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group ID")
		return
	}

	messages, err := h.chatService.ListMessages(r.Context(), userID, groupID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

type SendMessageBody struct {
	Content string `json:"content"`
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group ID")
		return
	}

	var body SendMessageBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	message, err := h.chatService.SendMessage(r.Context(), userID, groupID, body.Content)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, message)
}
