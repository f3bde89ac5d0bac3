// Package logging sets up the file logger. The terminal belongs to the TUI,
// so log output never goes to stdout or stderr while the program runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds logger configuration.
type Options struct {
	Path   string
	Level  string
	Prefix string
}

// New creates a logger writing to w.
func New(w io.Writer, level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// Open creates the log file (appending) and a logger writing to it.
// The returned closer must be closed on exit.
func Open(opts Options) (*log.Logger, io.Closer, error) {
	if opts.Path == "" {
		return nil, nil, fmt.Errorf("log path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(opts.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return New(f, opts.Level, opts.Prefix), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel maps a config string to a level, defaulting to info.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
