package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	for _, k := range []string{"DB_PATH", "PORT", "STATIC_PATH", "JWT_SECRET", "JWT_TTL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9090
database:
  path: /var/lib/kw/scores.db
jwt:
  secret: geheim
  ttl: 12h
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "../frontend/static", cfg.Server.StaticPath, "unset keys keep their default")
	assert.Equal(t, "/var/lib/kw/scores.db", cfg.Database.Path)
	assert.Equal(t, "geheim", cfg.JWT.Secret)
	assert.Equal(t, 12*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("PORT", "7070")
	t.Setenv("DB_PATH", "/tmp/kw.db")
	t.Setenv("JWT_SECRET", "uit-env")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/tmp/kw.db", cfg.Database.Path)
	assert.Equal(t, "uit-env", cfg.JWT.Secret)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad yaml", body: "server: [port"},
		{name: "bad port env", env: map[string]string{"PORT": "achtduizend"}},
		{name: "port out of range", body: "server:\n  port: 70000\n"},
		{name: "unknown log format", env: map[string]string{"LOG_FORMAT": "xml"}},
		{name: "bad ttl env", env: map[string]string{"JWT_TTL": "een dag"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
