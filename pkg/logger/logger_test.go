package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelWarn)

	Debug("d %d", 1)
	Info("i")
	Warn("w")
	Error("e")

	out := buf.String()
	assert.NotContains(t, out, "[DEBUG]")
	assert.NotContains(t, out, "[INFO]")
	assert.Contains(t, out, "[WARN] w")
	assert.Contains(t, out, "[ERROR] e")
}

func TestSetLevelFromString(t *testing.T) {
	buf := capture(t)

	SetLevelFromString("debug")
	Debug("visible")
	assert.Contains(t, buf.String(), "[DEBUG] visible")

	buf.Reset()
	SetLevelFromString("not-a-level") // falls back to info
	Debug("hidden")
	Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INFO] shown")
}

func TestFormatting(t *testing.T) {
	buf := capture(t)
	Info("task %s on %s at %.1f", "A", "m1", 2.5)
	assert.Equal(t, "[INFO] task A on m1 at 2.5\n", buf.String())
}
