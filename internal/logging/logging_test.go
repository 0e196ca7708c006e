package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/trailhead/internal/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.Default())
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1), "nop logger should not be enabled for any level")
}

func TestNewWritesSessionTaggedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trailhead.log")
	cfg := config.Default()
	cfg.LogFile = path
	cfg.LogLevel = "debug"

	logger, err := New(cfg)
	require.NoError(t, err)
	logger.Debug("tab selected")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "tab selected", record["msg"])
	assert.NotEmpty(t, record["session"])
}

func TestNewRejectsBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "x.log")
	cfg.LogLevel = "loud"

	_, err := New(cfg)
	assert.Error(t, err)
}
