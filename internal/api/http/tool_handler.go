package httpapi

import (
	"net/http"
	"time"

	"toolkeeper-backend/internal/domain"
	"toolkeeper-backend/internal/service"
)

type ToolHandler struct {
	toolSvc service.ToolService
}

func NewToolHandler(toolSvc service.ToolService) *ToolHandler {
	return &ToolHandler{toolSvc: toolSvc}
}

type toolRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
	OwnerID     *int32 `json:"owner_id"`
}

// Create handles POST /api/v1/tools
func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req toolRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		RespondError(w, http.StatusBadRequest, "name is required")
		return
	}

	tool := &domain.Tool{
		Name:        req.Name,
		Description: req.Description,
		Condition:   domain.ToolCondition(req.Condition),
		OwnerID:     req.OwnerID,
	}
	if err := h.toolSvc.CreateTool(r.Context(), tool); err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, tool)
}

// Get handles GET /api/v1/tools/{id}
func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	view, err := h.toolSvc.GetTool(r.Context(), id)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, view)
}

// List handles GET /api/v1/tools
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	views, total, err := h.toolSvc.ListTools(r.Context(), page, pageSize)
	if err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, PagedResponse{Items: views, Total: total})
}

// Update handles PUT /api/v1/tools/{id}
func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	var req toolRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tool := &domain.Tool{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Condition:   domain.ToolCondition(req.Condition),
		OwnerID:     req.OwnerID,
		UpdatedOn:   time.Now().UTC(),
	}
	if err := h.toolSvc.UpdateTool(r.Context(), tool); err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, tool)
}

// Delete handles DELETE /api/v1/tools/{id}
func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		RespondError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	if err := h.toolSvc.DeleteTool(r.Context(), id); err != nil {
		RespondServiceError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}
