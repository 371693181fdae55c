package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"toolkeeper-backend/internal/logger"
	"toolkeeper-backend/internal/metrics"
	"toolkeeper-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// PagedResponse wraps list results with the total row count so clients can
// paginate.
type PagedResponse struct {
	Items any   `json:"items"`
	Total int32 `json:"total"`
}

func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, errorResponse{Error: message})
}

func DecodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// RespondServiceError maps service sentinel errors onto HTTP status codes.
// Unknown errors become a 500 with a generic message so internals never
// leak to clients.
func RespondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrToolNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrMaintenanceNotFound),
		errors.Is(err, service.ErrSparePartNotFound),
		errors.Is(err, service.ErrNotificationNotFound),
		errors.Is(err, service.ErrUserNotFound):
		RespondError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrBookingConflict),
		errors.Is(err, service.ErrMaintenanceConflict):
		metrics.IncBookingConflict()
		RespondError(w, http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrNoActiveBooking),
		errors.Is(err, service.ErrInsufficientQuantity):
		RespondError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrEmailTaken):
		RespondError(w, http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrPermissionDenied):
		RespondError(w, http.StatusForbidden, err.Error())

	default:
		logger.Error("Unhandled service error", "error", err)
		RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
