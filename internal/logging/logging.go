// Package logging builds the structured logger shared by the CLI, the
// terminal driver and the game. The terminal belongs to the UI while a game
// runs, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix tags every line written by the logger.
const Prefix = "blocks"

// DefaultLevel is used when no level is given.
const DefaultLevel = "info"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to path at the named level, and a closer for
// the underlying file. An empty path discards all output.
func New(path, level string) (*log.Logger, io.Closer, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if path == "" {
		return newLogger(io.Discard, lvl), nopCloser{}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return newLogger(f, lvl), f, nil
}

func newLogger(w io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	})
}
