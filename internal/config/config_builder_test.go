package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePrecedence(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{API: API{BaseURL: "https://first.example.org"}},
		&Config{
			API: API{BaseURL: "https://second.example.org", RequestTimeout: 20 * time.Second},
			App: App{PageSize: 5},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value per field.
	assert.Equal(t, "https://first.example.org", cfg.API.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 5, cfg.App.PageSize)
}

func TestConfigBuilder_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	assert.ErrorIs(t, err, assert.AnError)
}

func TestConfigBuilder_WithJSONResolvesPathFromEarlierSources(t *testing.T) {
	path := writeTempJSON(t, `{"app": {"page_size": 7}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{JSONFilePath: path})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.App.PageSize)
}
