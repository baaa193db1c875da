// internal/handler/common.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/campusloop/campusloop/internal/domain"
	"github.com/campusloop/campusloop/internal/middleware"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
	Code  string `json:"error_code"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithDomainError maps the error taxonomy onto HTTP statuses in one
// place.
func respondWithDomainError(w http.ResponseWriter, err error) {
	code := domain.Code(err)

	status := http.StatusInternalServerError
	switch code {
	case domain.CodeValidation:
		status = http.StatusBadRequest
	case domain.CodeNotFound:
		status = http.StatusNotFound
	case domain.CodeNotAuthorized:
		status = http.StatusForbidden
	case domain.CodeConflict, domain.CodeTemplateNotConfigured:
		status = http.StatusConflict
	case domain.CodeStorage:
		status = http.StatusBadGateway
	}

	message := err.Error()
	if code == domain.CodeInternal {
		// Internal causes stay out of the response body.
		message = "internal error"
	}
	respondWithJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// identity pulls the caller identity set by the auth middleware; missing
// identity means the route was wired without it.
func identity(w http.ResponseWriter, r *http.Request) (middleware.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing identity")
	}
	return id, ok
}

// parseUUIDParam parses a chi URL parameter as a UUID.
func parseUUIDParam(w http.ResponseWriter, value, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
