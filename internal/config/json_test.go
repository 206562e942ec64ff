package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"api": {"base_url": "https://conduit.example.org", "request_timeout": "20s"},
		"app": {"page_size": 5, "web_base_url": "https://conduit.example.org", "log_path": "/tmp/rw.log"},
		"storage": {"state_dir": "/tmp/rw-state"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://conduit.example.org", cfg.API.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 5, cfg.App.PageSize)
	assert.Equal(t, "https://conduit.example.org", cfg.App.WebBaseURL)
	assert.Equal(t, "/tmp/rw.log", cfg.App.LogPath)
	assert.Equal(t, "/tmp/rw-state", cfg.Storage.StateDir)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"api": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.API.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSON(t, `{"api": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_RoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))

	var parsed Duration
	require.NoError(t, parsed.UnmarshalJSON(b))
	assert.Equal(t, d, parsed)
}
