package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
[server]
http_port = 9090

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "roomfinder-test"

[timetable]
url = "https://timetable.example.org"
timeout = 5

[catalog]
file = "rooms.json"

[resolver]
max_concurrent_fetches = 4
pacing_delay_ms = 100
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "roomfinder-test", cfg.Metrics.ServiceName)
	assert.Equal(t, "https://timetable.example.org", cfg.Timetable.URL)
	assert.Equal(t, 5, cfg.Timetable.Timeout)
	assert.Equal(t, "rooms.json", cfg.Catalog.File)
	assert.Equal(t, 4, cfg.Resolver.MaxConcurrentFetches)
	assert.Equal(t, 100, cfg.Resolver.PacingDelayMs)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
[timetable]
url = "https://timetable.example.org"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Timetable.Timeout)
	assert.Equal(t, "valid_rooms.json", cfg.Catalog.File)
	assert.Equal(t, 1, cfg.Resolver.MaxConcurrentFetches)
	assert.Equal(t, 0, cfg.Resolver.PacingDelayMs)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidToml(t *testing.T) {
	path := writeConfigFile(t, `[server`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	t.Run("no timetable url", func(t *testing.T) {
		path := writeConfigFile(t, `
[catalog]
file = "rooms.json"
`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad concurrency", func(t *testing.T) {
		path := writeConfigFile(t, `
[timetable]
url = "https://timetable.example.org"

[resolver]
max_concurrent_fetches = 0
`)
		_, err := Load(path)
		assert.Error(t, err)
	})
}
