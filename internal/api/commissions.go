package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/halcyonarts/gallery/internal/model"
	"github.com/halcyonarts/gallery/internal/store"
)

// CommissionsHandler handles commission-request endpoints.
type CommissionsHandler struct {
	DB *sql.DB
}

type createCommissionRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	SizeRequest  string `json:"size_request"`
	ColorPalette string `json:"color_palette"`
	Description  string `json:"description"`
	Budget       string `json:"budget"`
	Timeline     string `json:"timeline"`
	Notes        string `json:"notes"`
}

type updateCommissionRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// Create handles POST /api/commissions.
func (h *CommissionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommissionRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateCommission(&req); msg != "" {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	commission, err := store.CreateCommission(r.Context(), h.DB, model.Commission{
		Name:         req.Name,
		Email:        req.Email,
		SizeRequest:  req.SizeRequest,
		ColorPalette: req.ColorPalette,
		Description:  req.Description,
		Budget:       req.Budget,
		Timeline:     req.Timeline,
		Notes:        req.Notes,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create commission")
		return
	}

	jsonResponse(w, http.StatusCreated, commission)
}

// List handles GET /api/commissions.
func (h *CommissionsHandler) List(w http.ResponseWriter, r *http.Request) {
	commissions, err := store.ListCommissions(r.Context(), h.DB, 200)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list commissions")
		return
	}
	if commissions == nil {
		commissions = []model.Commission{}
	}
	jsonResponse(w, http.StatusOK, commissions)
}

// UpdateStatus handles PATCH /api/commissions/{id}/status.
func (h *CommissionsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid commission id")
		return
	}

	var req updateCommissionRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Status == nil && req.Notes == nil {
		jsonError(w, http.StatusBadRequest, "at least one of status or notes is required")
		return
	}
	if req.Status != nil && !model.ValidCommissionStatus(*req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	commission, err := store.UpdateCommission(r.Context(), h.DB, id, store.CommissionUpdate{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update commission")
		return
	}
	if commission == nil {
		jsonError(w, http.StatusNotFound, "commission not found")
		return
	}

	jsonResponse(w, http.StatusOK, commission)
}

// Delete handles DELETE /api/commissions/{id}.
func (h *CommissionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid commission id")
		return
	}

	deleted, err := store.DeleteCommission(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete commission")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "commission not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateCommission(req *createCommissionRequest) string {
	if len(req.Name) < 2 {
		return "name must be at least 2 characters"
	}
	if !validEmail(req.Email) {
		return "invalid email address"
	}
	if len(req.SizeRequest) < 2 {
		return "size_request must be at least 2 characters"
	}
	if len(req.ColorPalette) < 2 {
		return "color_palette must be at least 2 characters"
	}
	if len(req.Description) < 10 {
		return "description must be at least 10 characters"
	}
	if req.Budget == "" {
		return "budget required"
	}
	if req.Timeline == "" {
		return "timeline required"
	}
	return ""
}
