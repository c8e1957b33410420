package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/limbo/discipline/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown", slog.String("habit_id", "42"))
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "habit_id=42")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "loud")
	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
