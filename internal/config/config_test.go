package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Entropy.ChunkSize)
	assert.Equal(t, 3, cfg.Entropy.Retries)
	assert.Equal(t, 4, cfg.Generator.ClusterMin)
	assert.Equal(t, 20, cfg.Generator.ClusterMax)
	assert.Equal(t, 2*time.Second, cfg.GetRetryDelay())
	assert.Equal(t, 10*time.Second, cfg.GetTimeout())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qprose.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
entropy:
  chunk_size: 256
  retry_delay: "50ms"
generator:
  cluster_min: 2
  cluster_max: 6
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 256, cfg.Entropy.ChunkSize)
	assert.Equal(t, 50*time.Millisecond, cfg.GetRetryDelay())
	assert.Equal(t, 2, cfg.Generator.ClusterMin)
	assert.Equal(t, 6, cfg.Generator.ClusterMax)
	// Untouched fields keep their defaults.
	assert.Equal(t, 3, cfg.Entropy.Retries)
	assert.Equal(t, "wordlists", cfg.Generator.WordlistDir)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qprose.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entropy: ["), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("QPROSE_ENDPOINT overrides endpoint", func(t *testing.T) {
		t.Setenv("QPROSE_ENDPOINT", "http://localhost:9999/rng")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "http://localhost:9999/rng", cfg.Entropy.Endpoint)
	})

	t.Run("QPROSE_WORDLIST_DIR overrides directory", func(t *testing.T) {
		t.Setenv("QPROSE_WORDLIST_DIR", "/srv/words")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "/srv/words", cfg.Generator.WordlistDir)
	})

	t.Run("empty env leaves config untouched", func(t *testing.T) {
		t.Setenv("QPROSE_ENDPOINT", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, DefaultConfig().Entropy.Endpoint, cfg.Entropy.Endpoint)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty endpoint", func(c *Config) { c.Entropy.Endpoint = "" }},
		{"zero chunk size", func(c *Config) { c.Entropy.ChunkSize = 0 }},
		{"zero retries", func(c *Config) { c.Entropy.Retries = 0 }},
		{"zero cluster min", func(c *Config) { c.Generator.ClusterMin = 0 }},
		{"min above max", func(c *Config) { c.Generator.ClusterMin = 30 }},
		{"empty wordlist dir", func(c *Config) { c.Generator.WordlistDir = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDurationFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Entropy.RetryDelay = "not-a-duration"
	cfg.Entropy.Timeout = "also-bad"

	assert.Equal(t, 2*time.Second, cfg.GetRetryDelay())
	assert.Equal(t, 10*time.Second, cfg.GetTimeout())
}
