package config

// TrackerConfig is the root configuration for a tracker instance.
type TrackerConfig struct {
	API      APIConfig    `yaml:"api"`
	Database DBConfig     `yaml:"database"`
	Tracker  RunConfig    `yaml:"tracker"`
	Health   HealthConfig `yaml:"health"`
}

// APIConfig holds OpenSea API settings.
type APIConfig struct {
	BaseURL string   `yaml:"base_url"`
	APIKey  string   `yaml:"api_key"` // Sent as the X-API-KEY header
	Timeout Duration `yaml:"timeout"`
}

// DBConfig holds the PostgreSQL connection for snapshot storage.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// RunConfig holds the polling schedule and the collection list.
// The collection list is configuration data, not logic: collections are
// processed sequentially in the order given here.
type RunConfig struct {
	Interval    Duration `yaml:"interval"`
	Collections []string `yaml:"collections"`
}

// HealthConfig holds the health endpoint settings.
type HealthConfig struct {
	Port int `yaml:"port"`
}
