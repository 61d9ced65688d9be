// internal/handler/group.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/studyconnect/backend/internal/model"
	"github.com/studyconnect/backend/internal/service"
)

type GroupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var input service.GroupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	group, err := h.groupService.CreateGroup(r.Context(), userID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "group creation error", "error", err, "requestID", chimw.GetReqID(r.Context()))
		handleDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"group": group})
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.ListGroups(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) Search(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.SearchGroups(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, groups)
}

type JoinRequestBody struct {
	GroupID uuid.UUID `json:"groupId"`
}

func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var body JoinRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	membership, err := h.groupService.RequestJoin(r.Context(), userID, body.GroupID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, membership)
}

func (h *GroupHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groups, err := h.groupService.ListMyGroups(r.Context(), userID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) Created(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groups, err := h.groupService.ListCreatedGroups(r.Context(), userID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) Suggested(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groups, err := h.groupService.ListSuggestedGroups(r.Context(), userID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group ID")
		return
	}

	group, err := h.groupService.GetGroup(r.Context(), groupID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group ID")
		return
	}

	requests, err := h.groupService.ListPendingRequests(r.Context(), userID, groupID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}

func (h *GroupHandler) AllPendingRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	requests, err := h.groupService.ListAllPendingRequests(r.Context(), userID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}

type ResolveRequestBody struct {
	RequestID uuid.UUID              `json:"requestId"`
	Status    model.MembershipStatus `json:"status"`
}

func (h *GroupHandler) ResolveRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var body ResolveRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	membership, err := h.groupService.ResolveRequest(r.Context(), userID, body.RequestID, body.Status)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, membership)
}

func (h *GroupHandler) Kick(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group ID")
		return
	}
	memberID, err := uuid.Parse(chi.URLParam(r, "memberID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	if err := h.groupService.KickMember(r.Context(), userID, groupID, memberID); err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Member removed from group",
	})
}

func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group ID")
		return
	}

	var input service.GroupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	group, err := h.groupService.UpdateGroup(r.Context(), userID, groupID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "group update error", "error", err, "requestID", chimw.GetReqID(r.Context()))
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) Members(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group ID")
		return
	}

	members, err := h.groupService.ListApprovedMembers(r.Context(), userID, groupID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, members)
}
