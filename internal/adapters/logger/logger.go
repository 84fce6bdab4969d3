// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/warmboot/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
// The console receives pretty output, sinks receive text or JSON lines.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	level    *slog.LevelVar
	console  io.Writer
	sinks    []io.Writer
	jsonMode bool
}

// New creates a new Logger writing to stderr at info level.
func New() ports.Logger {
	return newLogger(os.Stderr)
}

func newLogger(console io.Writer) *Logger {
	l := &Logger{
		level:   &slog.LevelVar{},
		console: console,
	}
	l.rebuild()
	return l
}

// SetOutput replaces the console destination. If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.console = w
	l.rebuild()
}

// AddSink attaches an additional destination.
func (l *Logger) AddSink(w io.Writer) {
	if w == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sinks = append(l.sinks, w)
	l.rebuild()
}

// SetLevel changes the minimum level for every destination.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.level.Set(slog.Level(level))
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// rebuild must be called with mu held.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}

	handlers := make(fanout, 0, 1+len(l.sinks))
	if l.jsonMode {
		handlers = append(handlers, slog.NewJSONHandler(l.console, opts))
	} else {
		handlers = append(handlers, NewPrettyHandler(l.console, opts))
	}

	for _, w := range l.sinks {
		if l.jsonMode {
			handlers = append(handlers, slog.NewJSONHandler(w, opts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(w, opts))
		}
	}

	l.logger = slog.New(handlers)
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err.Error())
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
