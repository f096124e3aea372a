package providers

import (
	"context"
	"log/slog"
)

// logWithProvider emits a log record tagged with the provider name so
// scoreboard fetch logs are attributable when several providers are wired.
// Nil loggers are a no-op.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}
