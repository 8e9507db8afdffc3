// Package logging builds the application logger. Output goes to a file
// because the terminal is owned by the UI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"quran-tui/internal/config"
)

// New opens the configured log file and returns a logger writing to it along
// with a function that closes the file.
func New(cfg config.Log) (*logrus.Logger, func() error, error) {
	if cfg.File == "" {
		return NewWithWriter(cfg, io.Discard)
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger, _, err := NewWithWriter(cfg, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}

// NewWithWriter builds a logger over w.
func NewWithWriter(cfg config.Log, w io.Writer) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return logger, func() error { return nil }, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
