// Package logger builds the process logger.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	Debug bool
	// File, when set, receives a rotated copy of everything written to Output.
	File string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a logger writing to cfg.Output and, optionally, a rotating file.
// The returned closer releases the file and is safe to call when File is empty.
func New(cfg Config) (*log.Logger, io.Closer, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, err
		}
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(out, fileWriter)
		closer = fileWriter
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	l := log.NewWithOptions(out, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "skinmock",
	})
	return l, closer, nil
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
