package logging

import (
	"io"
	"log/slog"
)

// NewStructuredLogger returns a JSON slog logger writing to w, used for
// request logging where log aggregation expects structured records.
func NewStructuredLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger returns a human-readable slog logger for application
// events.
func NewTextLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
