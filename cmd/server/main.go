package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/halcyonarts/gallery/internal/api"
	"github.com/halcyonarts/gallery/internal/bootstrap"
	"github.com/halcyonarts/gallery/internal/config"
	"github.com/halcyonarts/gallery/internal/db"
	"github.com/halcyonarts/gallery/internal/media"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Open database.
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	// Run migrations (idempotent).
	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Assert the configured admin identity before accepting traffic.
	if err := bootstrap.EnsureAdmin(context.Background(), database,
		cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Fatalf("Failed to bootstrap admin account: %v", err)
	}

	uploader := &media.Uploader{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryFolder,
	}

	handler := api.LoggingMiddleware(api.NewRouter(database, cfg, uploader))

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("Server listening on %s (%s)\n", addr, cfg.Env)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
