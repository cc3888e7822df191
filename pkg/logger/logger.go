package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LevelNotice sits between info and warn, like syslog's notice.
const LevelNotice = slog.Level(2)

// SimpleHandler implements slog.Handler for common log format.
type SimpleHandler struct {
	Output io.Writer
	Level  slog.Level

	attrs []slog.Attr
}

func (h *SimpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.Level
}

func (h *SimpleHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String()
	if r.Level == LevelNotice {
		level = "NOTICE"
	}

	timeStr := r.Time.Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf("%s [%s] %s", timeStr, level, r.Message)

	for _, a := range h.attrs {
		msg += fmt.Sprintf(" %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		msg += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	})

	_, err := fmt.Fprintln(h.Output, msg)
	return err
}

// WithAttrs returns a copy of the handler that prefixes every record with attrs.
func (h *SimpleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &SimpleHandler{Output: h.Output, Level: h.Level, attrs: merged}
}

func (h *SimpleHandler) WithGroup(name string) slog.Handler {
	return h
}

// ParseLevel maps a config value to a slog level. Unknown values yield
// slog.LevelInfo together with an error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "notice":
		return LevelNotice, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}
