package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL     = "https://api.opensea.io/api/v2"
	DefaultAPITimeout  = Duration(30 * time.Second)
	DefaultDBPort      = 5432
	DefaultDBSSLMode   = "prefer"
	DefaultMaxConns    = 4
	DefaultMinConns    = 1
	DefaultRunInterval = Duration(1 * time.Hour)
	DefaultHealthPort  = 8080
)

func (c *TrackerConfig) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	if c.Tracker.Interval == 0 {
		c.Tracker.Interval = DefaultRunInterval
	}

	if c.Health.Port == 0 {
		c.Health.Port = DefaultHealthPort
	}
}
