package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTuiConfigDefaults(t *testing.T) {
	c := NewTuiConfig()
	assert.True(t, c.RawMode)
	assert.True(t, c.AlternateScreen)
	assert.True(t, c.HideCursor)
	assert.True(t, c.MouseCapture)
	assert.True(t, c.FaultTolerant)
	assert.Equal(t, defaultPollTimeout, c.PollTimeout)
	assert.Zero(t, c.TickRate)
	assert.False(t, c.DebugOverlay)
	assert.NotNil(t, c.ErrorOutput)
	assert.NotNil(t, c.ErrorHandler)
}

func TestTuiConfigNonPositivePollTimeoutFallsBackToDefault(t *testing.T) {
	c := NewTuiConfig().WithPollTimeout(0)
	assert.Equal(t, defaultPollTimeout, c.PollTimeout)

	c = NewTuiConfig().WithPollTimeout(-5 * time.Second)
	assert.Equal(t, defaultPollTimeout, c.PollTimeout)
}

func TestTuiConfigNilErrorHandlerFallsBackToDefault(t *testing.T) {
	c := NewTuiConfig().WithErrorHandler(nil)
	assert.Equal(t, DisplayAndQuit, c.ErrorHandler(nil))
}
