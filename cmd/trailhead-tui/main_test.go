package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mr-Dark-debug/trailhead/internal/config"
)

func TestProgramOptions(t *testing.T) {
	cfg := config.Default()
	assert.Len(t, programOptions(cfg), 2)

	cfg.AltScreen = false
	assert.Len(t, programOptions(cfg), 1)

	cfg.Mouse = false
	assert.Empty(t, programOptions(cfg))
}

func TestRunRejectsArguments(t *testing.T) {
	err := run([]string{"--config-dir", t.TempDir(), "extra"})
	assert.EqualError(t, err, "unexpected argument: extra")
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	assert.Error(t, run([]string{"--no-such-flag"}))
}
