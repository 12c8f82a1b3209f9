package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/halcyonarts/gallery/internal/auth"
	"github.com/halcyonarts/gallery/internal/model"
	"github.com/halcyonarts/gallery/internal/store"
)

// AuthHandler handles registration, login, and account endpoints.
type AuthHandler struct {
	DB        *sql.DB
	JWTSecret string
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Name) < 2 {
		jsonError(w, http.StatusBadRequest, "name must be at least 2 characters")
		return
	}
	if !validEmail(req.Email) {
		jsonError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Password) < 8 {
		jsonError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user, err := store.CreateUser(r.Context(), h.DB, req.Name, req.Email, string(hash), model.RoleCollector)
	if errors.Is(err, store.ErrDuplicate) {
		jsonError(w, http.StatusConflict, "email already in use")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Email, user.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("user registered", "email", user.Email)
	jsonResponse(w, http.StatusCreated, authResponse{User: user, Token: token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "email and password required")
		return
	}

	user, err := store.GetUserByEmail(r.Context(), h.DB, req.Email)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	// Unknown email and wrong password produce identical responses so the
	// endpoint can't be used to enumerate accounts.
	if user == nil {
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("login failed", "email", user.Email, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Email, user.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("user logged in", "email", user.Email, "role", user.Role)
	jsonResponse(w, http.StatusOK, authResponse{User: user, Token: token})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"user": claims})
}

// ListFavorites handles GET /api/auth/favorites.
func (h *AuthHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	ids, err := store.ListFavorites(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list favorites")
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"favorites": ids})
}

// AddFavorite handles POST /api/auth/favorites/{artworkID}.
func (h *AuthHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	artworkID, err := strconv.ParseInt(r.PathValue("artworkID"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	artwork, err := store.GetArtwork(r.Context(), h.DB, artworkID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if artwork == nil {
		jsonError(w, http.StatusNotFound, "artwork not found")
		return
	}

	if err := store.AddFavorite(r.Context(), h.DB, claims.UserID, artworkID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to add favorite")
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}

// RemoveFavorite handles DELETE /api/auth/favorites/{artworkID}.
func (h *AuthHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	artworkID, err := strconv.ParseInt(r.PathValue("artworkID"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid artwork id")
		return
	}

	if err := store.RemoveFavorite(r.Context(), h.DB, claims.UserID, artworkID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to remove favorite")
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}
