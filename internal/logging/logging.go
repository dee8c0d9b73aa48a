// Package logging builds slog loggers from command-line settings and
// carries them through a context.Context.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	// ErrUnknownLevel indicates a level name other than debug, info, warn or error.
	ErrUnknownLevel = errors.New("logging: unknown level")
	// ErrUnknownFormat indicates a format other than text or json.
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// ParseLevel maps a case-insensitive level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// CheckFormat validates a handler format name.
func CheckFormat(s string) error {
	switch strings.ToLower(s) {
	case "text", "json", "":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// New creates a logger writing to w. It does not set the global logger.
// Unknown levels fall back to info and unknown formats to text; validate
// with ParseLevel and CheckFormat first when the input is user supplied.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

type key struct{}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(key{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}
