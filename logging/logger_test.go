package logging

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	l := NewLogger(&buf, LevelWarning)
	l.Debug("hidden %d", 1)
	l.Info("hidden too")
	l.Warning("shown %s", "warn")
	l.Error("shown error")

	assert.Equal(t, "laptopinfo warn: shown warn\nlaptopinfo error: shown error\n", buf.String())
}

func TestLoggerDebug(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	l := NewLogger(&buf, LevelDebug)
	l.Debug("upower: %v", "not found")
	assert.Equal(t, "laptopinfo debug: upower: not found\n", buf.String())
}

func TestDiscardAndNil(t *testing.T) {
	Discard().Error("nothing")

	var l *Logger
	assert.NotPanics(t, func() { l.Debug("nil logger") })
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(DebugEnv, "")
	assert.Equal(t, LevelWarning, LevelFromEnv(LevelWarning))

	t.Setenv(DebugEnv, "1")
	assert.Equal(t, LevelDebug, LevelFromEnv(LevelWarning))
}
