package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/suar-net/suar-time/internal/config"
)

var keys = []string{
	"SERVER_PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT",
	"LOG_LEVEL", "LOG_FORMAT", "CATALOG_DIR", "CATALOG_ALLOW_DEGRADED",
	"DOCS_URL", "CORS_ALLOWED_ORIGINS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	require.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.Empty(t, cfg.Catalog.Dir)
	require.False(t, cfg.Catalog.AllowDegraded)
	require.Equal(t, "http://localhost:8080/docs", cfg.Catalog.DocsURL)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CATALOG_DIR", "/etc/suar-time/translations")
	t.Setenv("CATALOG_ALLOW_DEGRADED", "true")
	t.Setenv("DOCS_URL", "https://time.example/docs")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "/etc/suar-time/translations", cfg.Catalog.Dir)
	require.True(t, cfg.Catalog.AllowDegraded)
	require.Equal(t, "https://time.example/docs", cfg.Catalog.DocsURL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "SERVER_PORT", value: "http"},
		{key: "SERVER_PORT", value: "70000"},
		{key: "WRITE_TIMEOUT", value: "soon"},
		{key: "IDLE_TIMEOUT", value: "-1s"},
		{key: "LOG_FORMAT", value: "xml"},
		{key: "CATALOG_ALLOW_DEGRADED", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.LoadConfig()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.key)
		})
	}
}
