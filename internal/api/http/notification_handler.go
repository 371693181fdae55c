package httpapi

import (
	"net/http"

	"toolkeeper-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

// List handles GET /api/v1/notifications and always scopes to the caller.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	page, pageSize := pagination(r)

	notes, total, err := h.noteSvc.GetNotifications(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, PagedResponse{Items: notes, Total: total})
}

// MarkAsRead handles POST /api/v1/notifications/{id}/read
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	claims := ClaimsFromContext(r.Context())
	if err := h.noteSvc.MarkAsRead(r.Context(), claims.UserID, id); err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}
