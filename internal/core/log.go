package core

import (
	"fmt"
	"log"
	"os"
)

// Logger is a small leveled wrapper over the standard library logger,
// scoped to one pipeline stage.
type Logger struct {
	std *log.Logger
}

// NewLogger returns a Logger prefixed with the given stage name.
func NewLogger(stage string) *Logger {
	return &Logger{std: log.New(os.Stderr, "["+stage+"] ", 0)}
}

// Warnf logs a non-fatal condition, such as a clamped configuration value.
func (l *Logger) Warnf(format string, args ...any) {
	l.std.Print("WARN " + fmt.Sprintf(format, args...))
}

// Infof logs routine progress information.
func (l *Logger) Infof(format string, args ...any) {
	l.std.Print("INFO " + fmt.Sprintf(format, args...))
}
