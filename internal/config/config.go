// ABOUTME: Configuration loading and parsing for gidas-admin
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Mode selects how entity services reach their data.
type Mode int

const (
	// ModeMock persists collections in the local key-value store.
	ModeMock Mode = iota
	// ModeRemote delegates to the REST API at api.base_url.
	ModeRemote
)

// DefaultMockLatency emulates network round-trip time in mock mode so the
// asynchronous contract matches the remote path.
const DefaultMockLatency = 300 * time.Millisecond

// Config represents the complete gidas-admin configuration
type Config struct {
	API     APIConfig     `yaml:"api"`
	Store   StoreConfig   `yaml:"store"`
	Mock    MockConfig    `yaml:"mock"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig holds the remote REST API configuration. An empty BaseURL
// selects mock mode for the whole process.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`

	// ServerFilterPersonal opts the personnel list into server-side
	// subtype filtering (?tipo=...). When false the full list is fetched
	// and filtered locally.
	ServerFilterPersonal bool `yaml:"server_filter_personal"`
}

// StoreConfig holds the mock store database configuration
type StoreConfig struct {
	Path string `yaml:"path"`
}

// MockConfig holds mock-mode behavior configuration
type MockConfig struct {
	Latency time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	LatencyRaw string `yaml:"latency"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists:
// mock mode backed by gidas.db next to the working directory.
func Default() *Config {
	return &Config{
		Store: StoreConfig{Path: "gidas.db"},
		Mock:  MockConfig{Latency: DefaultMockLatency},
	}
}

// Mode returns the process-wide service mode. It depends only on whether
// an API base URL was configured and is decided once at load time.
func (c *Config) Mode() Mode {
	if c.API.BaseURL != "" {
		return ModeRemote
	}
	return ModeMock
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	// Mock mode needs a database path to persist collections
	if c.Mode() == ModeMock && c.Store.Path == "" {
		return fmt.Errorf("store.path is required when api.base_url is not set")
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	if cfg.Mock.LatencyRaw == "" {
		cfg.Mock.Latency = DefaultMockLatency
		return nil
	}

	d, err := time.ParseDuration(cfg.Mock.LatencyRaw)
	if err != nil {
		return fmt.Errorf("parsing mock latency %q: %w", cfg.Mock.LatencyRaw, err)
	}
	cfg.Mock.Latency = d
	return nil
}
