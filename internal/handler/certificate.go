// internal/handler/certificate.go
package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/campusloop/campusloop/internal/model"
	"github.com/campusloop/campusloop/internal/service"
	"github.com/go-chi/chi/v5"
)

type CertificateHandler struct {
	issuer *service.CertificateIssuer
}

func NewCertificateHandler(issuer *service.CertificateIssuer) *CertificateHandler {
	return &CertificateHandler{issuer: issuer}
}

type generateCertificatesRequest struct {
	Type model.CertificateType `json:"type"`
}

// GenerateForEvent handles POST /api/events/{eventID}/certificates
func (h *CertificateHandler) GenerateForEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	eventID, ok := parseUUIDParam(w, chi.URLParam(r, "eventID"), "event id")
	if !ok {
		return
	}

	req := generateCertificatesRequest{Type: model.CertificateParticipation}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	result, err := h.issuer.GenerateForEvent(r.Context(), eventID, req.Type, id.UserID, id.Role)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// Download handles GET /api/certificates/{certificateID}/download
func (h *CertificateHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	certificateID := chi.URLParam(r, "certificateID")

	rc, cert, err := h.issuer.DownloadCertificate(r.Context(), certificateID, id.UserID, id.Role)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+cert.CertificateID+`.pdf"`)
	if _, err := io.Copy(w, rc); err != nil {
		// Headers are already out; nothing more to report to the client.
		return
	}
}
