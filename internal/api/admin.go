package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/halcyonarts/gallery/internal/model"
	"github.com/halcyonarts/gallery/internal/store"
)

// AdminHandler handles the back-office endpoints.
type AdminHandler struct {
	DB *sql.DB
}

type updateUserRoleRequest struct {
	Role model.Role `json:"role"`
}

// Overview handles GET /api/admin/overview.
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := store.GetOverview(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to compute overview")
		return
	}
	jsonResponse(w, http.StatusOK, overview)
}

// ListUsers handles GET /api/admin/users. Password hashes are never
// serialized (the model excludes them from JSON).
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := store.ListUsers(r.Context(), h.DB, 250)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if users == nil {
		users = []model.User{}
	}
	jsonResponse(w, http.StatusOK, users)
}

// UpdateUserRole handles PATCH /api/admin/users/{id}/role.
func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateUserRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !model.ValidRole(req.Role) {
		jsonError(w, http.StatusBadRequest, "invalid role")
		return
	}

	user, err := store.UpdateUserRole(r.Context(), h.DB, id, req.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update user role")
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}

	slog.Info("user role changed", "user", user.Email, "role", user.Role)
	jsonResponse(w, http.StatusOK, user)
}
