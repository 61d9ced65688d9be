// internal/handler/forum.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/service"
)

type ForumHandler struct {
	forumService *service.ForumService
}

func NewForumHandler(forumService *service.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

func (h *ForumHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.forumService.ListQuestions(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, questions)
}

func (h *ForumHandler) Get(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	question, err := h.forumService.GetQuestion(r.Context(), questionID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, question)
}

func (h *ForumHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var input service.QuestionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	question, err := h.forumService.CreateQuestion(r.Context(), userID, input)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, question)
}

func (h *ForumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	if err := h.forumService.DeleteQuestion(r.Context(), userID, questionID); err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Question deleted successfully"})
}

type AnswerBody struct {
	Content string `json:"content"`
}

func (h *ForumHandler) Answer(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	questionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	var body AnswerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	answer, err := h.forumService.AnswerQuestion(r.Context(), userID, questionID, body.Content)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, answer)
}

func (h *ForumHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	answerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid answer ID")
		return
	}

	if err := h.forumService.DeleteAnswer(r.Context(), userID, answerID); err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Answer deleted successfully"})
}

func (h *ForumHandler) Search(w http.ResponseWriter, r *http.Request) {
	questions, err := h.forumService.SearchQuestions(r.Context(), chi.URLParam(r, "query"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, questions)
}
