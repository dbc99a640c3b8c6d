package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/diffpager/config"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()

	assert.Equal(t, []string{"j", "down"}, cfg.Keys.Down)
	assert.Equal(t, []string{"q", "ctrl+c"}, cfg.Keys.Quit)
	assert.Empty(t, cfg.Theme.Added)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.Defaults().Keys, cfg.Keys)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `keys:
  down: ["n"]
  quit: ["esc"]
theme:
  added: "#87ff5f"
  header_background: "4"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"n"}, cfg.Keys.Down)
	assert.Equal(t, []string{"esc"}, cfg.Keys.Quit)
	// Unset actions keep their defaults.
	assert.Equal(t, []string{"k", "up"}, cfg.Keys.Up)
	assert.Equal(t, "#87ff5f", cfg.Theme.Added)
	assert.Equal(t, "4", cfg.Theme.HeaderBackground)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml ["), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
