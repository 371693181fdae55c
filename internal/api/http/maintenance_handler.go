package httpapi

import (
	"net/http"
	"time"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/service"
)

type MaintenanceHandler struct {
	maintSvc service.MaintenanceService
}

func NewMaintenanceHandler(maintSvc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintSvc: maintSvc}
}

type maintenanceRequest struct {
	ToolID      int32      `json:"tool_id"`
	Description string     `json:"description"`
	CostCents   *int32     `json:"cost_cents,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status,omitempty"`
}

type consumePartRequest struct {
	SparePartID int32 `json:"spare_part_id"`
	Quantity    int32 `json:"quantity"`
}

// Create handles POST /api/v1/maintenances
func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req maintenanceRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ToolID == 0 {
		RespondError(w, http.StatusBadRequest, "tool_id is required")
		return
	}

	m := &domain.Maintenance{
		ToolID:      req.ToolID,
		Description: req.Description,
		CostCents:   req.CostCents,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      domain.MaintenanceStatus(req.Status),
	}
	if err := h.maintSvc.CreateMaintenance(r.Context(), m); err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, m)
}

// Get handles GET /api/v1/maintenances/{id}
func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid maintenance id")
		return
	}

	m, err := h.maintSvc.GetMaintenance(r.Context(), id)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, m)
}

// List handles GET /api/v1/maintenances
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	maints, total, err := h.maintSvc.ListMaintenances(r.Context(), status, page, pageSize)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, PagedResponse{Items: maints, Total: total})
}

// Update handles PUT /api/v1/maintenances/{id}
func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid maintenance id")
		return
	}

	var req maintenanceRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m := &domain.Maintenance{
		ID:          id,
		ToolID:      req.ToolID,
		Description: req.Description,
		CostCents:   req.CostCents,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      domain.MaintenanceStatus(req.Status),
	}
	if err := h.maintSvc.UpdateMaintenance(r.Context(), m); err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, m)
}

// ConsumePart handles POST /api/v1/maintenances/{id}/parts
func (h *MaintenanceHandler) ConsumePart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid maintenance id")
		return
	}

	var req consumePartRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SparePartID == 0 || req.Quantity <= 0 {
		RespondError(w, http.StatusBadRequest, "spare_part_id and a positive quantity are required")
		return
	}

	part, err := h.maintSvc.ConsumeSparePart(r.Context(), id, req.SparePartID, req.Quantity)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, part)
}
