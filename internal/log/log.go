// ABOUTME: Level-gated logger built on slog levels with a swappable writer
// ABOUTME: Interactive mode points it at a file so log lines never tear the TUI

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	mu  sync.Mutex
	out io.Writer = os.Stderr
	// stamp prefixes lines with a timestamp; enabled for file output.
	stamp bool
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// ParseLevel maps "debug", "info", "warn"/"warning", "error" to a level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// SetOutput redirects log output. Timestamps are added when withTime is set.
func SetOutput(w io.Writer, withTime bool) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	out = w
	stamp = withTime
}

// OpenFile redirects output to an append-only file and returns a closer
// that restores stderr.
func OpenFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f, true)
	return func() error {
		SetOutput(os.Stderr, false)
		return f.Close()
	}, nil
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if slog.Level(level.Load()) > LevelDebug {
		return
	}
	write("DEBUG", format, args)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if slog.Level(level.Load()) > LevelInfo {
		return
	}
	write("INFO", format, args)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if slog.Level(level.Load()) > LevelWarn {
		return
	}
	write("WARN", format, args)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	write("ERROR", format, args)
}

func write(tag, format string, args []any) {
	mu.Lock()
	defer mu.Unlock()
	if stamp {
		fmt.Fprintf(out, "%s [%s] "+format+"\n", append([]any{time.Now().Format(time.RFC3339), tag}, args...)...)
		return
	}
	fmt.Fprintf(out, "[%s] "+format+"\n", append([]any{tag}, args...)...)
}
