package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_PATH", writeConfig(t, "environment:\n  name: test\n"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment.Name)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 1, cfg.Backend.ProbeLimit)
	assert.Equal(t, "access_token", cfg.Credential.Slot)
	assert.NotContains(t, cfg.Credential.Path, "~")
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_PATH", writeConfig(t, `
backend:
  url: https://tasks.example.com/
  timeout: 3s
  probe_limit: 5
credential:
  path: /tmp/tasksync-test
  slot: token
rate_limit:
  per_min: 30
  burst: 5
`))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://tasks.example.com", cfg.Backend.URL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 5, cfg.Backend.ProbeLimit)
	assert.Equal(t, "/tmp/tasksync-test", cfg.Credential.Path)
	assert.Equal(t, "token", cfg.Credential.Slot)
	assert.Equal(t, 30, cfg.RateLimit.PerMin)
}

func TestLoadRejectsInvalidBackend(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_PATH", writeConfig(t, "backend:\n  url: ftp://nope\n"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("CONFIG_PATH", writeConfig(t, "{}\n"))
	t.Setenv("TASKSYNC_BACKEND_URL", "http://backend:9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000", cfg.Backend.URL)
}
