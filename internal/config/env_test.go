package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesConfig(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://conduit.example.org")
	t.Setenv("API_REQUEST_TIMEOUT", "30s")
	t.Setenv("APP_PAGE_SIZE", "25")
	t.Setenv("APP_WEB_BASE_URL", "https://conduit.example.org")
	t.Setenv("STORAGE_STATE_DIR", "/tmp/conduit-state")

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://conduit.example.org", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 25, cfg.App.PageSize)
	assert.Equal(t, "https://conduit.example.org", cfg.App.WebBaseURL)
	assert.Equal(t, "/tmp/conduit-state", cfg.Storage.StateDir)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("API_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &Config{}
	assert.Error(t, parseEnv(cfg))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, "https://api.realworld.io", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 10, cfg.App.PageSize)
	assert.Equal(t, "https://demo.realworld.io", cfg.App.WebBaseURL)
	require.NoError(t, cfg.validate())
}

func TestValidate_RejectsNegativePageSize(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.App.PageSize = -1

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}
