// Package logger provides a thin wrapper around zerolog.Logger used
// throughout realworld-tui.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Because the TUI owns the terminal, the client constructor writes to a log
// file rather than stdout.
package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding zerolog.Logger
// exposes the full zerolog API while allowing the application to add helper
// methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger writing JSON entries to the file at path. Every
// entry carries a "role" field, a timestamp, and a "func" caller field
// recording the fully-qualified function name. An empty path, or a path that
// cannot be opened, falls back to a file named "realworld-tui.log" next to
// the executable, and finally to stderr.
func New(role, path string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	out := openLogFile(path)
	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

func openLogFile(path string) *os.File {
	if path == "" {
		execPath, err := os.Executable()
		if err != nil {
			return os.Stderr
		}
		path = filepath.Join(filepath.Dir(execPath), "realworld-tui.log")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// Nop returns a *Logger that discards all log output. It is intended for use
// in tests and other contexts where logging would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}
