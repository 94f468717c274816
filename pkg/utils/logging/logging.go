// Package logging configures the diagnostic logger used across Wilder.
//
// Diagnostics go to stderr and are separate from the user-facing messages written by notify.
// The level defaults to warning and can be raised with WILDER_LOG_LEVEL=debug.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing to writer at the given level.
// A nil writer defaults to os.Stderr. An empty level defaults to warning.
func New(writer io.Writer, level string) (*logrus.Logger, error) {
	if writer == nil {
		writer = os.Stderr
	}

	if level == "" {
		level = logrus.WarnLevel.String()
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(writer)
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)

	return logger
}
