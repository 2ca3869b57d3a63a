package lottie

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	assert.NotPanics(t, func() {
		Logger().Debug("should not panic or write anywhere")
	})
}

func TestSetLoggerReplacesDefault(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(nil, slog.LevelInfo))
}
