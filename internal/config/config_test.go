package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() *TrackerConfig {
	cfg := &TrackerConfig{}
	cfg.API.APIKey = "test-key"
	cfg.Database.Host = "localhost"
	cfg.Database.Name = "nft"
	cfg.Database.User = "tracker"
	cfg.Database.Password = "secret"
	cfg.Tracker.Collections = []string{"pridepunks2018"}
	cfg.applyDefaults()
	return cfg
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config failed validation: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*TrackerConfig)
		wantErr string
	}{
		{
			name:    "missing api key",
			mutate:  func(c *TrackerConfig) { c.API.APIKey = "" },
			wantErr: "api.api_key",
		},
		{
			name:    "missing db host",
			mutate:  func(c *TrackerConfig) { c.Database.Host = "" },
			wantErr: "database.host",
		},
		{
			name:    "missing db password",
			mutate:  func(c *TrackerConfig) { c.Database.Password = "" },
			wantErr: "database.password",
		},
		{
			name:    "empty collection list",
			mutate:  func(c *TrackerConfig) { c.Tracker.Collections = nil },
			wantErr: "tracker.collections",
		},
		{
			name:    "negative interval",
			mutate:  func(c *TrackerConfig) { c.Tracker.Interval = Duration(-time.Minute) },
			wantErr: "tracker.interval",
		},
		{
			name:    "min conns exceed max",
			mutate:  func(c *TrackerConfig) { c.Database.MinConns = 10; c.Database.MaxConns = 2 },
			wantErr: "min_conns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &TrackerConfig{}
	cfg.applyDefaults()

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.Timeout != DefaultAPITimeout {
		t.Errorf("Timeout = %v, want %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Port = %d, want %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Tracker.Interval != DefaultRunInterval {
		t.Errorf("Interval = %v, want %v", cfg.Tracker.Interval, DefaultRunInterval)
	}
	if cfg.Health.Port != DefaultHealthPort {
		t.Errorf("Health.Port = %d, want %d", cfg.Health.Port, DefaultHealthPort)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEST_OPENSEA_KEY", "from-env")

	yaml := `
api:
  api_key: ${TEST_OPENSEA_KEY}
database:
  host: localhost
  name: nft
  user: tracker
  password: secret
tracker:
  interval: 30m
  collections:
    - pridepunks2018
    - boredapeyachtclub
`
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate: %v", err)
	}

	if cfg.API.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want %q", cfg.API.APIKey, "from-env")
	}
	if cfg.Tracker.Interval.Std() != 30*time.Minute {
		t.Errorf("Interval = %v, want 30m", cfg.Tracker.Interval.Std())
	}
	if len(cfg.Tracker.Collections) != 2 {
		t.Fatalf("Collections = %v, want 2 entries", cfg.Tracker.Collections)
	}
	if cfg.Tracker.Collections[0] != "pridepunks2018" {
		t.Errorf("Collections[0] = %q, want pridepunks2018", cfg.Tracker.Collections[0])
	}
	// Defaults fill unset fields.
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
