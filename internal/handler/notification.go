// internal/handler/notification.go
package handler

import (
	"net/http"

	"github.com/campusloop/campusloop/internal/service"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler struct {
	notifier *service.InvitationNotifier
}

func NewNotificationHandler(notifier *service.InvitationNotifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// List handles GET /api/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	notifications, err := h.notifier.ListForUser(r.Context(), id.UserID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, notifications)
}

// MarkRead handles POST /api/notifications/{notificationID}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	notificationID, ok := parseUUIDParam(w, chi.URLParam(r, "notificationID"), "notification id")
	if !ok {
		return
	}

	if err := h.notifier.MarkRead(r.Context(), notificationID, id.UserID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Dismiss handles DELETE /api/notifications/{notificationID}. Dismissing an
// already-absent notification succeeds.
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	notificationID, ok := parseUUIDParam(w, chi.URLParam(r, "notificationID"), "notification id")
	if !ok {
		return
	}

	if err := h.notifier.Dismiss(r.Context(), notificationID, id.UserID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
