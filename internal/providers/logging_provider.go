package providers

import (
	"context"
	"log/slog"
	"time"

	"espn-scores-service/internal/domain"
	"espn-scores-service/internal/metrics"
)

// LoggingProvider wraps a Provider with structured logging and metrics.
// It never alters the call itself: one attempt, failures propagate unchanged.
type LoggingProvider struct {
	next    Provider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
}

// NewLoggingProvider decorates next with per-call logging and metrics.
func NewLoggingProvider(next Provider, logger *slog.Logger, recorder *metrics.Recorder, name string) *LoggingProvider {
	if name == "" {
		name = "provider"
	}
	return &LoggingProvider{next: next, logger: logger, metrics: recorder, name: name}
}

func (p *LoggingProvider) FetchScoreboard(ctx context.Context, league domain.League, q Query) (domain.Scoreboard, error) {
	start := time.Now()
	sb, err := p.next.FetchScoreboard(ctx, league, q)
	duration := time.Since(start)

	if p.metrics != nil {
		p.metrics.RecordProviderAttempt(p.name, league.Tag, duration, err)
	}
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "scoreboard fetch failed",
			slog.String("league", league.Tag),
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.Any("error", err),
		)
		return domain.Scoreboard{}, err
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "scoreboard fetched",
		slog.String("league", league.Tag),
		slog.Int("count", len(sb.Games)),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
	return sb, nil
}

func (p *LoggingProvider) FetchLeagueInfo(ctx context.Context, league domain.League) (domain.LeagueInfo, error) {
	start := time.Now()
	info, err := p.next.FetchLeagueInfo(ctx, league)
	duration := time.Since(start)

	if p.metrics != nil {
		p.metrics.RecordProviderAttempt(p.name, league.Tag, duration, err)
	}
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "league info fetch failed",
			slog.String("league", league.Tag),
			slog.Any("error", err),
		)
		return domain.LeagueInfo{}, err
	}
	return info, nil
}

// Provider exposes the wrapped provider.
func (p *LoggingProvider) Provider() Provider {
	return p.next
}
