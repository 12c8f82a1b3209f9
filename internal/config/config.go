package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MinSecretLength is the minimum accepted JWT signing secret length.
const MinSecretLength = 12

// Config holds all runtime configuration. It is loaded once in main and
// passed to the components that need it; nothing reads the environment
// after startup.
type Config struct {
	Port       int
	DBPath     string
	JWTSecret  string
	WebOrigins []string

	// Cloudinary credentials. Uploads are disabled when any is empty.
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	// Optional bootstrap admin identity.
	AdminEmail    string
	AdminPassword string
	AdminName     string

	Env string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                4000,
		DBPath:              getEnv("DB_PATH", "gallery.sqlite3"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "gallery"),
		AdminEmail:          strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
		AdminName:           strings.TrimSpace(os.Getenv("ADMIN_NAME")),
		Env:                 getEnv("APP_ENV", "development"),
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n <= 0 || n > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = n
	}

	// A weak or missing signing secret makes every issued token forgeable.
	if len(cfg.JWTSecret) < MinSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters", MinSecretLength)
	}

	for _, origin := range strings.Split(getEnv("WEB_ORIGIN", "http://localhost:3000"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.WebOrigins = append(cfg.WebOrigins, origin)
		}
	}

	return cfg, nil
}

// CloudinaryConfigured reports whether all image-host credentials are set.
func (c *Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
