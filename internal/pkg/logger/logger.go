package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// StdLogger implements ports.Logger on top of log/slog.
// Without verbose only warnings and errors are written.
type StdLogger struct {
	log *slog.Logger
}

// NewStd creates a StdLogger writing to stderr.
func NewStd(verbose bool) *StdLogger {
	return New(os.Stderr, verbose)
}

// New creates a StdLogger writing text records to w.
func New(w io.Writer, verbose bool) *StdLogger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &StdLogger{log: slog.New(handler)}
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelDebug, msg, nil, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelInfo, msg, nil, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelWarn, msg, nil, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.emit(slog.LevelError, msg, err, fields)
}

func (l *StdLogger) emit(level slog.Level, msg string, err error, fields map[string]interface{}) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields)+1)
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	for key, value := range fields {
		attrs = append(attrs, slog.Any(key, value))
	}
	l.log.LogAttrs(ctx, level, msg, attrs...)
}
