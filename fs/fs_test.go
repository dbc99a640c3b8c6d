package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/diffpager/fs"
)

func TestDefaultConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	assert.Equal(t,
		filepath.Join("/tmp/xdg-config", "diffpager", "config.yaml"),
		fs.DefaultConfigPath())
}

func TestDefaultConfigPath_HomeFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/someone")

	assert.Equal(t,
		filepath.Join("/home/someone", ".config", "diffpager", "config.yaml"),
		fs.DefaultConfigPath())
}

func TestDefaultLogPath_XDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")

	assert.Equal(t,
		filepath.Join("/tmp/xdg-state", "diffpager", "debug.log"),
		fs.DefaultLogPath())
}
