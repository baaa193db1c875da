// internal/handler/team.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/campusloop/campusloop/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TeamHandler struct {
	registry *service.TeamRegistry
}

func NewTeamHandler(registry *service.TeamRegistry) *TeamHandler {
	return &TeamHandler{registry: registry}
}

type createTeamRequest struct {
	Name       string `json:"name"`
	MaxMembers int    `json:"max_members"`
}

// CreateTeam handles POST /api/teams
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.registry.CreateTeam(r.Context(), service.CreateTeamInput{
		LeaderID:   id.UserID,
		Name:       req.Name,
		MaxMembers: req.MaxMembers,
	})
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, team)
}

// GetTeam handles GET /api/teams/{teamID}
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, ok := parseUUIDParam(w, chi.URLParam(r, "teamID"), "team id")
	if !ok {
		return
	}

	team, err := h.registry.GetTeam(r.Context(), teamID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, team)
}

type inviteMemberRequest struct {
	UserID  uuid.UUID `json:"user_id"`
	Message string    `json:"message"`
}

// InviteMember handles POST /api/teams/{teamID}/invites
func (h *TeamHandler) InviteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(w, chi.URLParam(r, "teamID"), "team id")
	if !ok {
		return
	}

	var req inviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.registry.InviteMember(r.Context(), service.InviteMemberInput{
		TeamID:       teamID,
		ActorID:      id.UserID,
		TargetUserID: req.UserID,
		Message:      req.Message,
	})
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, inv)
}

type respondInviteRequest struct {
	Accept bool `json:"accept"`
}

// RespondInvite handles POST /api/teams/{teamID}/invites/respond
func (h *TeamHandler) RespondInvite(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(w, chi.URLParam(r, "teamID"), "team id")
	if !ok {
		return
	}

	var req respondInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	team, err := h.registry.RespondInvite(r.Context(), teamID, id.UserID, req.Accept)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, team)
}

// RemoveMember handles DELETE /api/teams/{teamID}/members/{userID}
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(w, chi.URLParam(r, "teamID"), "team id")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(w, chi.URLParam(r, "userID"), "user id")
	if !ok {
		return
	}

	if err := h.registry.RemoveMember(r.Context(), teamID, id.UserID, userID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// DeleteTeam handles DELETE /api/teams/{teamID}
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(w, chi.URLParam(r, "teamID"), "team id")
	if !ok {
		return
	}

	if err := h.registry.DeleteTeam(r.Context(), teamID, id.UserID, id.Role); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
