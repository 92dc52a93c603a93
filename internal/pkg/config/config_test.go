package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/go-session-gate/internal/pkg/config"
	"github.com/klwxsrx/go-session-gate/pkg/log"
)

func setRequired(t *testing.T) {
	t.Setenv("IDENTITY_AUDIENCE", "proj-1")
	t.Setenv("SQL_USER", "gate")
	t.Setenv("SQL_PASSWORD", "secret")
	t.Setenv("SQL_ADDRESS", "localhost:5432")
	t.Setenv("SQL_DATABASE", "gate")
}

// inDir runs the test from dir, Load looks for .env in the working directory.
func inDir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddress)
	assert.Equal(t, log.LevelInfo, cfg.Level())
	assert.False(t, cfg.DevMode())
	assert.True(t, cfg.UsesDefaultJWTSecret())
	assert.Equal(t, time.Minute, cfg.SessionTimeout())
	assert.Equal(t, time.Minute, cfg.InactivityTimeout())
	assert.Equal(t, 5*time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, 2*time.Minute, cfg.ValidationCacheSweepInterval)
	assert.Equal(t, []string{"SUPER_ADMIN", "ADMIN"}, cfg.AdminRoles)
	assert.Equal(t, "securetoken.google.com", cfg.IdentityIssuerHost)
	assert.Empty(t, cfg.IdentityJWKSURL)
	assert.Equal(t, time.Hour, cfg.IdentityJWKSRefreshInterval)
	assert.Equal(t, 10, cfg.SQLMaxOpenConnections)
	assert.Equal(t, 20*time.Second, cfg.SQLConnectionTimeout)
	assert.Empty(t, cfg.PulsarAddress)
	assert.Equal(t, "persistent://public/default/session-events", cfg.SessionEventsTopic)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "Development")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("JWT_SECRET", "custom")
	t.Setenv("SESSION_TIMEOUT_MINUTES", "30")
	t.Setenv("SESSION_SWEEP_INTERVAL", "90s")
	t.Setenv("ADMIN_ROLES", "OWNER,ADMIN")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.DevMode())
	assert.Equal(t, log.LevelDebug, cfg.Level())
	assert.False(t, cfg.UsesDefaultJWTSecret())
	assert.Equal(t, 30*time.Minute, cfg.SessionTimeout())
	assert.Equal(t, 90*time.Second, cfg.SessionSweepInterval)
	assert.Equal(t, []string{"OWNER", "ADMIN"}, cfg.AdminRoles)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing_audience", map[string]string{"IDENTITY_AUDIENCE": ""}},
		{"missing_sql_address", map[string]string{"SQL_ADDRESS": ""}},
		{"unknown_log_level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"zero_inactivity_timeout", map[string]string{"SESSION_INACTIVITY_TIMEOUT_MINUTES": "0"}},
		{"too_frequent_cache_sweep", map[string]string{"VALIDATION_CACHE_SWEEP_INTERVAL": "10ms"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	setRequired(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=warn\nJWT_SECRET=from-file\n"), 0o600))
	inDir(t, dir)
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, cfg.Level())
	assert.Equal(t, "from-env", cfg.JWTSecret)
}

func TestLoad_UnreadableDotEnv(t *testing.T) {
	setRequired(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o700))
	inDir(t, dir)

	_, err := config.Load()
	assert.ErrorContains(t, err, "read .env")
}
