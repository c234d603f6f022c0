// Package config holds qprose configuration: entropy supply knobs, generator
// bounds, and logging. Values come from defaults, an optional YAML file, and
// environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all qprose configuration.
type Config struct {
	Entropy   EntropyConfig   `yaml:"entropy"`
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// EntropyConfig configures the remote byte supply.
type EntropyConfig struct {
	Endpoint   string `yaml:"endpoint"`
	ChunkSize  int    `yaml:"chunk_size"`
	Retries    int    `yaml:"retries"`
	RetryDelay string `yaml:"retry_delay"`
	Timeout    string `yaml:"timeout"`
}

// GeneratorConfig configures sentence generation.
type GeneratorConfig struct {
	ClusterMin  int    `yaml:"cluster_min"`
	ClusterMax  int    `yaml:"cluster_max"`
	WordlistDir string `yaml:"wordlist_dir"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Entropy: EntropyConfig{
			Endpoint:   "https://qrng.anu.edu.au/API/jsonI.php",
			ChunkSize:  1024,
			Retries:    3,
			RetryDelay: "2s",
			Timeout:    "10s",
		},
		Generator: GeneratorConfig{
			ClusterMin:  4,
			ClusterMax:  20,
			WordlistDir: "wordlists",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if endpoint := os.Getenv("QPROSE_ENDPOINT"); endpoint != "" {
		c.Entropy.Endpoint = endpoint
	}
	if dir := os.Getenv("QPROSE_WORDLIST_DIR"); dir != "" {
		c.Generator.WordlistDir = dir
	}
}

// GetRetryDelay returns the inter-retry delay as a duration.
func (c *Config) GetRetryDelay() time.Duration {
	d, err := time.ParseDuration(c.Entropy.RetryDelay)
	if err != nil {
		return 2 * time.Second
	}
	return d
}

// GetTimeout returns the per-request timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Entropy.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Entropy.Endpoint == "" {
		return fmt.Errorf("entropy endpoint not configured")
	}
	if c.Entropy.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.Entropy.ChunkSize)
	}
	if c.Entropy.Retries <= 0 {
		return fmt.Errorf("retries must be positive, got %d", c.Entropy.Retries)
	}
	if c.Generator.ClusterMin <= 0 {
		return fmt.Errorf("cluster min must be positive, got %d", c.Generator.ClusterMin)
	}
	if c.Generator.ClusterMin > c.Generator.ClusterMax {
		return fmt.Errorf("cluster min %d exceeds max %d", c.Generator.ClusterMin, c.Generator.ClusterMax)
	}
	if c.Generator.WordlistDir == "" {
		return fmt.Errorf("wordlist directory not configured")
	}

	return nil
}
