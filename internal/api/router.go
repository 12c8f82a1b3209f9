package api

import (
	"database/sql"
	"net/http"

	"github.com/halcyonarts/gallery/internal/config"
	"github.com/halcyonarts/gallery/internal/media"
	"github.com/halcyonarts/gallery/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, cfg *config.Config, uploader *media.Uploader) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: cfg.JWTSecret}
	artworksHandler := &ArtworksHandler{DB: db, Uploader: uploader}
	ordersHandler := &OrdersHandler{DB: db}
	commissionsHandler := &CommissionsHandler{DB: db}
	adminHandler := &AdminHandler{DB: db}

	authMW := AuthMiddleware(cfg.JWTSecret)
	requireAdmin := RequireRole(model.RoleAdmin)

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth: public registration and login, bearer-only account routes.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))
	mux.Handle("GET /api/auth/favorites", authMW(http.HandlerFunc(authHandler.ListFavorites)))
	mux.Handle("POST /api/auth/favorites/{artworkID}", authMW(http.HandlerFunc(authHandler.AddFavorite)))
	mux.Handle("DELETE /api/auth/favorites/{artworkID}", authMW(http.HandlerFunc(authHandler.RemoveFavorite)))

	// Artworks: public reads, admin writes.
	mux.HandleFunc("GET /api/artworks", artworksHandler.List)
	mux.HandleFunc("GET /api/artworks/{slugOrID}", artworksHandler.Get)
	mux.Handle("POST /api/artworks", authMW(requireAdmin(http.HandlerFunc(artworksHandler.Create))))
	mux.Handle("POST /api/artworks/upload-image", authMW(requireAdmin(http.HandlerFunc(artworksHandler.UploadImage))))
	mux.Handle("PATCH /api/artworks/{id}", authMW(requireAdmin(http.HandlerFunc(artworksHandler.Update))))
	mux.Handle("DELETE /api/artworks/{id}", authMW(requireAdmin(http.HandlerFunc(artworksHandler.Delete))))

	// Orders: public creation, admin management.
	mux.HandleFunc("POST /api/orders", ordersHandler.Create)
	mux.HandleFunc("POST /api/orders/cashapp", ordersHandler.CreateCashApp)
	mux.Handle("GET /api/orders", authMW(requireAdmin(http.HandlerFunc(ordersHandler.List))))
	mux.Handle("PATCH /api/orders/{id}/status", authMW(requireAdmin(http.HandlerFunc(ordersHandler.UpdateStatus))))
	mux.Handle("DELETE /api/orders/{id}", authMW(requireAdmin(http.HandlerFunc(ordersHandler.Delete))))

	// Commissions: public intake, admin triage.
	mux.HandleFunc("POST /api/commissions", commissionsHandler.Create)
	mux.Handle("GET /api/commissions", authMW(requireAdmin(http.HandlerFunc(commissionsHandler.List))))
	mux.Handle("PATCH /api/commissions/{id}/status", authMW(requireAdmin(http.HandlerFunc(commissionsHandler.UpdateStatus))))
	mux.Handle("DELETE /api/commissions/{id}", authMW(requireAdmin(http.HandlerFunc(commissionsHandler.Delete))))

	// Admin back office.
	mux.Handle("GET /api/admin/overview", authMW(requireAdmin(http.HandlerFunc(adminHandler.Overview))))
	mux.Handle("GET /api/admin/users", authMW(requireAdmin(http.HandlerFunc(adminHandler.ListUsers))))
	mux.Handle("PATCH /api/admin/users/{id}/role", authMW(requireAdmin(http.HandlerFunc(adminHandler.UpdateUserRole))))

	return CORSMiddleware(cfg.WebOrigins)(mux)
}
