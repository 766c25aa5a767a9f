package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "LOG_LEVEL", "SHUTDOWN_TIMEOUT", "CATALOG_PATH", "STATIC_DIR",
		"ASSET_BASE_URL", "CORS_ALLOWED_ORIGINS", "R2_ACCOUNT_ID", "R2_BUCKET_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.CatalogPath)
	assert.Empty(t, cfg.AssetBaseURL)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("CATALOG_PATH", "/etc/legacygolf/catalog.yaml")
	t.Setenv("ASSET_BASE_URL", "https://assets.legacygolf.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://legacygolf.com, https://www.legacygolf.com,")
	t.Setenv("R2_BUCKET_NAME", "site-assets")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/etc/legacygolf/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "https://assets.legacygolf.com", cfg.AssetBaseURL)
	assert.Equal(t, []string{"https://legacygolf.com", "https://www.legacygolf.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "site-assets", cfg.R2.BucketName)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"non-numeric port": {"SERVER_PORT", "http"},
		"port too large":   {"SERVER_PORT", "70000"},
		"bad log level":    {"LOG_LEVEL", "loud"},
		"bad timeout":      {"SHUTDOWN_TIMEOUT", "soon"},
		"negative timeout": {"SHUTDOWN_TIMEOUT", "-1s"},
	}

	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
