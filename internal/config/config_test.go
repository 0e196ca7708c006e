package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `log:
  file: /tmp/trailhead.log
  level: debug
ui:
  alt_screen: false
  inset_bottom: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/trailhead.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.AltScreen)
	assert.True(t, cfg.Mouse, "unset keys keep their defaults")
	assert.Equal(t, 0, cfg.InsetTop)
	assert.Equal(t, 2, cfg.InsetBottom)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	yaml := "ui:\n  inset_top: -1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unterminated"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestValidateLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "warn"
	assert.NoError(t, cfg.Validate())
}
