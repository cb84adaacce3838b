package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"server"`

	Database struct {
		DSN             string `yaml:"dsn"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
	} `yaml:"database"`

	Schedule struct {
		RefreshInterval int           `yaml:"refresh_interval"` // minutes between fetches of the same feed
		WaveSize        int           `yaml:"wave_size"`        // feeds fetched concurrently per wave
		FeedTimeout     time.Duration `yaml:"feed_timeout"`     // per-feed fetch deadline
		Poll            bool          `yaml:"poll"`             // run batches periodically in the background
	} `yaml:"schedule"`

	Fetch struct {
		UserAgent string `yaml:"user_agent"`
	} `yaml:"fetch"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// setDefaults fills in zero-valued fields
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:groupfeeder.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Schedule.RefreshInterval == 0 {
		c.Schedule.RefreshInterval = 15
	}
	if c.Schedule.WaveSize == 0 {
		c.Schedule.WaveSize = 5
	}
	if c.Schedule.FeedTimeout == 0 {
		c.Schedule.FeedTimeout = 30 * time.Second
	}

	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "GroupFeeder/1.0"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Schedule.RefreshInterval < 1 {
		return fmt.Errorf("schedule refresh_interval must be at least 1 minute")
	}
	if cfg.Schedule.WaveSize < 1 {
		return fmt.Errorf("schedule wave_size must be at least 1")
	}
	if cfg.Schedule.FeedTimeout < time.Second {
		return fmt.Errorf("schedule feed_timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetRefreshInterval returns the feed refresh interval
func (c *Config) GetRefreshInterval() time.Duration {
	return time.Duration(c.Schedule.RefreshInterval) * time.Minute
}
