package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
// A missing API key is a fatal startup condition: every request requires it.
func (c *TrackerConfig) Validate() error {
	if c.API.APIKey == "" {
		return errors.New("api.api_key is required")
	}

	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if len(c.Tracker.Collections) == 0 {
		return errors.New("tracker.collections must list at least one collection")
	}
	if c.Tracker.Interval < 0 {
		return errors.New("tracker.interval must not be negative")
	}

	if c.Health.Port < 1 || c.Health.Port > 65535 {
		return fmt.Errorf("health.port must be between 1 and 65535, got %d", c.Health.Port)
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
