package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slimauth/pkg/config"
)

type parseConfig struct {
	Name    string        `env:"TEST_NAME" envDefault:"default_value"`
	Count   int           `env:"TEST_COUNT" envDefault:"42"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED,required"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
}

type fileConfig struct {
	Value string `env:"TEST_FILE_VALUE"`
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg parseConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{}))
		assert.Equal(t, "default_value", cfg.Name)
		assert.Equal(t, 42, cfg.Count)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("explicit environment", func(t *testing.T) {
		var cfg parseConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{
			"TEST_NAME":    "custom",
			"TEST_COUNT":   "7",
			"TEST_TIMEOUT": "1m",
		}))
		assert.Equal(t, "custom", cfg.Name)
		assert.Equal(t, 7, cfg.Count)
		assert.Equal(t, time.Minute, cfg.Timeout)
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg parseConfig
		err := config.Parse(&cfg, map[string]string{"TEST_COUNT": "many"})
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Parse(&cfg, map[string]string{})
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Parse[parseConfig](nil, nil), config.ErrNilPointer)
	})
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("TEST_CACHED_VALUE", "first")

	var cfg cachedConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value)

	t.Setenv("TEST_CACHED_VALUE", "second")
	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value, "the first parsed value is reused")
}

func TestLoad_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilPointer)
	assert.Panics(t, func() { config.MustLoad[cachedConfig](nil) })
}

func TestLoadEnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_FILE_VALUE=from_file\n"), 0o600))

	t.Setenv("TEST_FILE_VALUE", "")
	require.NoError(t, os.Unsetenv("TEST_FILE_VALUE"))

	require.NoError(t, config.LoadEnvFiles(path))

	var cfg fileConfig
	require.NoError(t, config.Parse(&cfg, nil))
	assert.Equal(t, "from_file", cfg.Value)

	assert.Error(t, config.LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
	assert.NoError(t, config.LoadEnvFiles())
}
