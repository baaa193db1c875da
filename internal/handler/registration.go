// internal/handler/registration.go
package handler

import (
	"net/http"

	"github.com/campusloop/campusloop/internal/service"
	"github.com/go-chi/chi/v5"
)

type RegistrationHandler struct {
	registrar *service.EventRegistrar
}

func NewRegistrationHandler(registrar *service.EventRegistrar) *RegistrationHandler {
	return &RegistrationHandler{registrar: registrar}
}

// RegisterIndividual handles POST /api/events/{eventID}/register
func (h *RegistrationHandler) RegisterIndividual(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(w, chi.URLParam(r, "eventID"), "event id")
	if !ok {
		return
	}

	if err := h.registrar.RegisterIndividual(r.Context(), eventID, id.UserID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, BaseResponse{Ok: true})
}

// UnregisterIndividual handles DELETE /api/events/{eventID}/register
func (h *RegistrationHandler) UnregisterIndividual(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(w, chi.URLParam(r, "eventID"), "event id")
	if !ok {
		return
	}

	if err := h.registrar.UnregisterIndividual(r.Context(), eventID, id.UserID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// RegisterTeam handles POST /api/events/{eventID}/register-team/{teamID}
func (h *RegistrationHandler) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(w, chi.URLParam(r, "eventID"), "event id")
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(w, chi.URLParam(r, "teamID"), "team id")
	if !ok {
		return
	}

	if err := h.registrar.RegisterTeam(r.Context(), eventID, teamID, id.UserID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, BaseResponse{Ok: true})
}

// UnregisterTeam handles DELETE /api/events/{eventID}/register-team/{teamID}
func (h *RegistrationHandler) UnregisterTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(w, chi.URLParam(r, "eventID"), "event id")
	if !ok {
		return
	}
	teamID, ok := parseUUIDParam(w, chi.URLParam(r, "teamID"), "team id")
	if !ok {
		return
	}

	if err := h.registrar.UnregisterTeam(r.Context(), eventID, teamID, id.UserID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
