package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointAtMissingFile keeps the test run independent of a config.yaml in the
// working directory.
func pointAtMissingFile(t *testing.T) {
	t.Helper()
	t.Setenv("TRIPOFFERS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
}

func writeConfigFile(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("TRIPOFFERS_CONFIG", path)
}

func TestLoadDefaults(t *testing.T) {
	pointAtMissingFile(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.BindAddr)
	assert.Equal(t, "offers.db", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 90*time.Second, cfg.RunDeadline)
	assert.Equal(t, 5*time.Second, cfg.RenderWait)
	assert.Equal(t, "https://www.makalius.lt", cfg.MakaliusBaseURL)
	assert.Equal(t, "https://airguru.lt", cfg.AirGuruBaseURL)
	assert.Equal(t, "https://www.teztour.lt", cfg.TezTourBaseURL)
}

func TestLoadFromFile(t *testing.T) {
	writeConfigFile(t, `
bind_addr: 127.0.0.1:9090
database:
  dsn: /var/lib/tripoffers/offers.db
scrape:
  fetch_timeout: 3s
  run_deadline: 2m
  render_wait: 8s
  makalius_base_url: https://makalius.example
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.BindAddr)
	assert.Equal(t, "/var/lib/tripoffers/offers.db", cfg.DatabaseDSN)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 2*time.Minute, cfg.RunDeadline)
	assert.Equal(t, 8*time.Second, cfg.RenderWait)
	assert.Equal(t, "https://makalius.example", cfg.MakaliusBaseURL)
	assert.Equal(t, "https://airguru.lt", cfg.AirGuruBaseURL, "unset keys keep their defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	writeConfigFile(t, "bind_addr: 127.0.0.1:9090\n")
	t.Setenv("BIND_ADDR", "0.0.0.0:7070")
	t.Setenv("FETCH_TIMEOUT", "4s")
	t.Setenv("AIRGURU_BASE_URL", "https://airguru.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:7070", cfg.BindAddr)
	assert.Equal(t, 4*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "https://airguru.example", cfg.AirGuruBaseURL)
}

func TestLoadMalformedFile(t *testing.T) {
	writeConfigFile(t, "bind_addr: [")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoadBadFileDuration(t *testing.T) {
	writeConfigFile(t, "scrape:\n  fetch_timeout: soon\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch_timeout")
}

func TestLoadRejectsDeadlineShorterThanFetchTimeout(t *testing.T) {
	pointAtMissingFile(t)
	t.Setenv("FETCH_TIMEOUT", "30s")
	t.Setenv("RUN_DEADLINE", "10s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run deadline")
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	pointAtMissingFile(t)
	t.Setenv("RENDER_WAIT", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render wait")
}

func TestBadEnvDurationFallsBackToDefault(t *testing.T) {
	pointAtMissingFile(t)
	t.Setenv("RUN_DEADLINE", "not a duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.RunDeadline)
}
