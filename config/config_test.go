package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "", cfg.DatabaseDSN)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionMaxAge)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 500, cfg.CacheMaxSize)
	assert.False(t, cfg.Production())
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ECOCYCLE_ADDR", ":9090")
	t.Setenv("ECOCYCLE_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://app:pw@db:5432/ecocycle")
	t.Setenv("SESSION_MAX_AGE", "24h")
	t.Setenv("ASSIST_URL", "https://assist.example.com/chat")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://app:pw@db:5432/ecocycle", cfg.DatabaseDSN)
	assert.Equal(t, 24*time.Hour, cfg.SessionMaxAge)
	assert.Equal(t, "https://assist.example.com/chat", cfg.AssistURL)
	assert.True(t, cfg.Production())
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ECOCYCLE_ADDR", ":9090")
	t.Setenv("ECOCYCLE_ENV", "production")

	cfg, err := Load([]string{"-a", ":7070", "-e", "development", "-s", "48h"})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 48*time.Hour, cfg.SessionMaxAge)
}

func TestLoad_InvalidFlag(t *testing.T) {
	_, err := Load([]string{"-s", "not-a-duration"})
	require.Error(t, err)
}

func TestLoad_InvalidSessionMaxAgeEnvIgnored(t *testing.T) {
	t.Setenv("SESSION_MAX_AGE", "garbage")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionMaxAge)
}
