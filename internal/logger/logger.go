package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Acckion/XiaomiNote-for-Mac-sub011/internal/markup"
)

// Logger wraps charm/log for structured logging. It satisfies
// markup.ErrorLogger, so a parser can report its degradations through it.
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// LogWarning reports one parse degradation. Part of markup.ErrorLogger.
func (l *Logger) LogWarning(w markup.Warning) {
	l.Warn("markup warning",
		"kind", w.Kind.String(),
		"offset", w.Pos,
		"message", w.Message)
}

// LogError reports a parse abort. Part of markup.ErrorLogger.
func (l *Logger) LogError(err error, ctx map[string]string) {
	kv := []any{"error", err}
	for k, v := range ctx {
		kv = append(kv, k, v)
	}
	l.Error("markup error", kv...)
}

// ParseCompleted logs the outcome of one parse
func (l *Logger) ParseCompleted(file string, blocks, warnings int, duration time.Duration) {
	l.Info("parse completed",
		"file", file,
		"blocks", blocks,
		"warnings", warnings,
		"duration", duration.Round(time.Millisecond))
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(mode, logFile string) {
	l.Debug("config loaded",
		"mode", mode,
		"log_file", logFile)
}
