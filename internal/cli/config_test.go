package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfigDefaults(t *testing.T) {
	cfg, err := LoadServerConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultServerConfig(), cfg)
}

func TestLoadServerConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sumgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\nsize: 6\n"), 0o644))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 6, cfg.Size)
	// Unset keys keep their defaults.
	assert.Equal(t, 10, cfg.Blanks)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadServerConfigRejectsBadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sumgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: -3\n"), 0o644))

	_, err := LoadServerConfig(path)
	assert.Error(t, err)
}

func TestLoadServerConfigMissingFile(t *testing.T) {
	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
