package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestNewLoggerConsoleToggle will test that the console logger is only enabled when requested.
func TestNewLoggerConsoleToggle(t *testing.T) {
	// With console logging disabled, the underlying console logger stays disabled.
	logger := NewLogger(zerolog.InfoLevel, false)
	assert.EqualValues(t, zerolog.Disabled, logger.consoleLogger.GetLevel())

	// With console logging enabled, the console logger runs at the requested level.
	logger = NewLogger(zerolog.InfoLevel, true)
	assert.EqualValues(t, zerolog.InfoLevel, logger.consoleLogger.GetLevel())
}

// TestNewSubLogger will test that a sub-logger inherits its parent's level and stamps its key-value context
// onto emitted events.
func TestNewSubLogger(t *testing.T) {
	// Create a base logger writing structured output to a buffer.
	var buf bytes.Buffer
	logger := NewLogger(zerolog.InfoLevel, false, &buf)

	// Derive a sub-logger and validate it inherits the parent's level.
	subLogger := logger.NewSubLogger("module", "cache")
	assert.EqualValues(t, zerolog.InfoLevel, subLogger.Level())

	// Events emitted through the sub-logger carry its context.
	subLogger.Info("wrote snapshot")
	assert.Contains(t, buf.String(), `"module":"cache"`)
	assert.Contains(t, buf.String(), "wrote snapshot")
}

// TestAddWriter will test that adding a writer routes structured output to it and that duplicate writers are
// not added twice.
func TestAddWriter(t *testing.T) {
	logger := NewLogger(zerolog.InfoLevel, false)

	// Add the same writer twice and validate the duplicate is ignored.
	var buf bytes.Buffer
	logger.AddWriter(&buf)
	logger.AddWriter(&buf)
	assert.Len(t, logger.writers, 1)

	// Output reaches the added writer.
	logger.Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

// TestSetLevel will test that updating a logger's level applies to later events.
func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(zerolog.InfoLevel, false, &buf)

	// Raise the level and validate an info event is discarded.
	logger.SetLevel(zerolog.WarnLevel)
	assert.EqualValues(t, zerolog.WarnLevel, logger.Level())
	logger.Info("quiet")
	assert.NotContains(t, buf.String(), "quiet")

	// A warning still gets through.
	logger.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}
