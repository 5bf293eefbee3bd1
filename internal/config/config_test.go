package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 5, cfg.Defaults.Top)
	assert.Equal(t, 4, cfg.Defaults.Jobs)
}

func TestLoadFromFile(t *testing.T) {
	t.Run("loads a full config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logsift.yaml")
		content := `format: ndjson
quiet: true
verbose: true
defaults:
  top: 10
  jobs: 8
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, "ndjson", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, 10, cfg.Defaults.Top)
		assert.Equal(t, 8, cfg.Defaults.Jobs)
	})

	t.Run("partial file keeps defaults for omitted keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logsift.yaml")
		content := `defaults:
  top: 3
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, "text", cfg.Format)
		assert.Equal(t, 3, cfg.Defaults.Top)
		assert.Equal(t, 4, cfg.Defaults.Jobs)
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml returns an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logsift.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: [unclosed"), 0o644))

		_, err := LoadFromFile(path)
		assert.Error(t, err)
	})
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Run("overrides format and toggles", func(t *testing.T) {
		t.Setenv("LOGSIFT_FORMAT", "ndjson")
		t.Setenv("LOGSIFT_QUIET", "true")
		t.Setenv("LOGSIFT_VERBOSE", "1")

		cfg := Default()
		applyEnvOverrides(cfg)

		assert.Equal(t, "ndjson", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
	})

	t.Run("overrides numeric defaults", func(t *testing.T) {
		t.Setenv("LOGSIFT_TOP", "20")
		t.Setenv("LOGSIFT_JOBS", "16")

		cfg := Default()
		applyEnvOverrides(cfg)

		assert.Equal(t, 20, cfg.Defaults.Top)
		assert.Equal(t, 16, cfg.Defaults.Jobs)
	})

	t.Run("ignores invalid numeric values", func(t *testing.T) {
		t.Setenv("LOGSIFT_TOP", "lots")
		t.Setenv("LOGSIFT_JOBS", "-2")

		cfg := Default()
		applyEnvOverrides(cfg)

		assert.Equal(t, 5, cfg.Defaults.Top)
		assert.Equal(t, 4, cfg.Defaults.Jobs)
	})

	t.Run("ignores false-like quiet values", func(t *testing.T) {
		t.Setenv("LOGSIFT_QUIET", "no")

		cfg := Default()
		applyEnvOverrides(cfg)

		assert.False(t, cfg.Quiet)
	})
}
