package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "a-long-enough-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "gallery.sqlite3", cfg.DBPath)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.WebOrigins)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.CloudinaryConfigured())
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadParsesOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WEB_ORIGIN", "https://gallery.example.com, https://admin.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://gallery.example.com", "https://admin.example.com"}, cfg.WebOrigins)
}

func TestLoadRejectsBadPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadAdminIdentity(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_EMAIL", " Owner@Example.COM ")
	t.Setenv("ADMIN_PASSWORD", "studio-password")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", cfg.AdminEmail)
	assert.Equal(t, "studio-password", cfg.AdminPassword)
}

func TestCloudinaryConfigured(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.CloudinaryConfigured())
}
