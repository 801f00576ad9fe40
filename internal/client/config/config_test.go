package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.InactivityTimeout)
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", "http://api.internal:9000", "-i", "10"}

	cfg := LoadConfig()
	assert.Equal(t, "http://api.internal:9000", cfg.ServerURL)
	assert.Equal(t, 10*time.Minute, cfg.InactivityTimeout)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "conf.json")
	payload, err := json.Marshal(map[string]any{
		"server_url":         "http://json.example:5000",
		"request_timeout":    "5s",
		"inactivity_timeout": "20m",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, payload, 0o600))

	os.Args = []string{"testbin", "-c", path}

	cfg := LoadConfig()
	assert.Equal(t, "http://json.example:5000", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20*time.Minute, cfg.InactivityTimeout)
}
