package httpapi

import (
	"context"
	"net/http"
	"time"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	ToolID    int32     `json:"tool_id"`
	UserID    int32     `json:"user_id,omitempty"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

type checkoutRequest struct {
	EndDate time.Time `json:"end_date,omitempty"`
}

// Create handles POST /api/v1/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ToolID == 0 {
		RespondError(w, http.StatusBadRequest, "tool_id is required")
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), service.CreateBookingInput{
		Actor:     actorFromContext(r.Context()),
		ToolID:    req.ToolID,
		UserID:    req.UserID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.BookingStatus(req.Status),
		Notes:     req.Notes,
	})
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, booking)
}

// Get handles GET /api/v1/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), actorFromContext(r.Context()), id)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, booking)
}

// List handles GET /api/v1/bookings. Staff see their own bookings,
// admins and managers see everything.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	bookings, total, err := h.bookingSvc.ListBookings(r.Context(), actorFromContext(r.Context()), status, page, pageSize)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, PagedResponse{Items: bookings, Total: total})
}

// Approve handles POST /api/v1/bookings/{id}/approve
func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.bookingSvc.ApproveBooking)
}

// Reject handles POST /api/v1/bookings/{id}/reject
func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.bookingSvc.RejectBooking)
}

func (h *BookingHandler) decide(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actor service.Actor, id int32) (*domain.Booking, error)) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := fn(r.Context(), actorFromContext(r.Context()), id)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, booking)
}

// Cancel handles POST /api/v1/bookings/{id}/cancel
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.bookingSvc.CancelBooking)
}

// Checkout handles POST /api/v1/tools/{id}/checkout. The body is optional;
// only privileged direct checkouts need an end_date.
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	toolID, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	var req checkoutRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := DecodeJSON(r, &req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	booking, err := h.bookingSvc.Checkout(r.Context(), service.CheckoutInput{
		Actor:   actorFromContext(r.Context()),
		ToolID:  toolID,
		EndDate: req.EndDate,
	})
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, booking)
}

// Checkin handles POST /api/v1/tools/{id}/checkin
func (h *BookingHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	toolID, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	booking, err := h.bookingSvc.Checkin(r.Context(), actorFromContext(r.Context()), toolID)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, booking)
}
