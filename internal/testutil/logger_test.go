package testutil

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCaptureLogger(t *testing.T) {
	logger, buf := NewCaptureLogger(slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown", "key", "value")

	lines := buf.Lines()
	if assert.Len(t, lines, 1) {
		assert.Contains(t, lines[0], "msg=shown")
		assert.Contains(t, lines[0], "key=value")
	}
}

func TestCaptureLogger_Concurrent(t *testing.T) {
	logger, buf := NewCaptureLogger(slog.LevelDebug)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Debug("tick", "i", i)
		}()
	}
	wg.Wait()

	assert.Len(t, buf.Lines(), 16)
}

func TestLogBuffer_Empty(t *testing.T) {
	var buf LogBuffer
	assert.Empty(t, buf.String())
	assert.Nil(t, buf.Lines())
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
	logger.Debug("written to the test log")
}
