package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
database:
  dsn: "file:test.db?mode=rwc"
  max_open_conns: 20
schedule:
  refresh_interval: 30
  wave_size: 10
  feed_timeout: 1m
  poll: true
fetch:
  user_agent: "custom/1.0"
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:test.db?mode=rwc", cfg.Database.DSN)
		assert.Equal(t, 20, cfg.Database.MaxOpenConns)
		assert.Equal(t, 30, cfg.Schedule.RefreshInterval)
		assert.Equal(t, 30*time.Minute, cfg.GetRefreshInterval())
		assert.Equal(t, 10, cfg.Schedule.WaveSize)
		assert.Equal(t, time.Minute, cfg.Schedule.FeedTimeout)
		assert.True(t, cfg.Schedule.Poll)
		assert.Equal(t, "custom/1.0", cfg.Fetch.UserAgent)
	})

	t.Run("defaults fill empty config", func(t *testing.T) {
		path := writeConfig(t, "{}")

		cfg, err := Load(path)
		require.NoError(t, err)

		listen, timeout := cfg.GetServerConfig()
		assert.Equal(t, ":8080", listen)
		assert.Equal(t, 30*time.Second, timeout)
		assert.Equal(t, 15, cfg.Schedule.RefreshInterval)
		assert.Equal(t, 5, cfg.Schedule.WaveSize)
		assert.Equal(t, 30*time.Second, cfg.Schedule.FeedTimeout)
		assert.False(t, cfg.Schedule.Poll)
		assert.Equal(t, "GroupFeeder/1.0", cfg.Fetch.UserAgent)
		assert.Contains(t, cfg.Database.DSN, "groupfeeder.db")
	})

	t.Run("environment variables expanded", func(t *testing.T) {
		t.Setenv("TEST_GF_DSN", "file:from-env.db?mode=rwc")
		path := writeConfig(t, `
database:
  dsn: "${TEST_GF_DSN}"
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file:from-env.db?mode=rwc", cfg.Database.DSN)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [not a map")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name    string
			content string
		}{
			{"short server timeout", "server:\n  timeout: 100ms\n"},
			{"negative refresh interval", "schedule:\n  refresh_interval: -1\n"},
			{"negative wave size", "schedule:\n  wave_size: -5\n"},
			{"short feed timeout", "schedule:\n  feed_timeout: 10ms\n"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Load(writeConfig(t, tc.content))
				require.Error(t, err)
				assert.Contains(t, err.Error(), "validate config")
			})
		}
	})
}
