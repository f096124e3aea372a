package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config selects the handler format, minimum level, and the service identity
// attached to every record. Zero values mean text at info level.
type Config struct {
	Format  string // "text" or "json"
	Level   string // "debug", "info", "warn", "error"
	Service string
	Version string
}

// NewLogger returns a structured logger with sane defaults.
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var logger *slog.Logger
	if strings.EqualFold(cfg.Format, "json") {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
	}

	if attrs := WithCommon(nil, cfg.Service, cfg.Version); len(attrs) > 0 {
		args := make([]any, 0, len(attrs))
		for _, attr := range attrs {
			args = append(args, attr)
		}
		logger = logger.With(args...)
	}
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
