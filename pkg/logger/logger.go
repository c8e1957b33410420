// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	// debug, info, warn or error; unknown values mean info
	Level string
	// Rotated log file; empty logs to stderr only
	File string
}

// New returns a logger writing text records to stderr and, when cfg.File is
// set, to a rotating file as well.
func New(cfg Config) (*slog.Logger, error) {
	var writer io.Writer = os.Stderr
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, err
		}
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}
	return NewWithWriter(writer, cfg.Level), nil
}

func NewWithWriter(w io.Writer, level string) *slog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    lvl == log.DebugLevel,
		Level:           lvl,
		Prefix:          "discipline",
	})
	return slog.New(handler)
}
