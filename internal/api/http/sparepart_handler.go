package httpapi

import (
	"net/http"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/service"
)

type SparePartHandler struct {
	partSvc service.SparePartService
}

func NewSparePartHandler(partSvc service.SparePartService) *SparePartHandler {
	return &SparePartHandler{partSvc: partSvc}
}

type sparePartRequest struct {
	Name          string `json:"name"`
	Quantity      int32  `json:"quantity"`
	MinQuantity   int32  `json:"min_quantity"`
	UnitCostCents int32  `json:"unit_cost_cents"`
}

// Create handles POST /api/v1/spare-parts
func (h *SparePartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sparePartRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		RespondError(w, http.StatusBadRequest, "name is required")
		return
	}

	part := &domain.SparePart{
		Name:          req.Name,
		Quantity:      req.Quantity,
		MinQuantity:   req.MinQuantity,
		UnitCostCents: req.UnitCostCents,
	}
	if err := h.partSvc.CreateSparePart(r.Context(), part); err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, part)
}

// Get handles GET /api/v1/spare-parts/{id}
func (h *SparePartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid spare part id")
		return
	}

	part, err := h.partSvc.GetSparePart(r.Context(), id)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, part)
}

// List handles GET /api/v1/spare-parts
func (h *SparePartHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	parts, total, err := h.partSvc.ListSpareParts(r.Context(), page, pageSize)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, PagedResponse{Items: parts, Total: total})
}

// Update handles PUT /api/v1/spare-parts/{id}
func (h *SparePartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid spare part id")
		return
	}

	var req sparePartRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	part := &domain.SparePart{
		ID:            id,
		Name:          req.Name,
		Quantity:      req.Quantity,
		MinQuantity:   req.MinQuantity,
		UnitCostCents: req.UnitCostCents,
	}
	if err := h.partSvc.UpdateSparePart(r.Context(), part); err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, part)
}
