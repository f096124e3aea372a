package testutil

import (
	"context"

	"espn-scores-service/internal/domain"
	"espn-scores-service/internal/providers"
)

// StaticProvider returns a fixed scoreboard and league info, counting calls.
type StaticProvider struct {
	Board domain.Scoreboard
	Info  domain.LeagueInfo

	ScoreboardCalls int
	InfoCalls       int
	LastLeague      domain.League
	LastQuery       providers.Query
}

func (p *StaticProvider) FetchScoreboard(ctx context.Context, league domain.League, q providers.Query) (domain.Scoreboard, error) {
	_ = ctx
	p.ScoreboardCalls++
	p.LastLeague = league
	p.LastQuery = q
	return p.Board, nil
}

func (p *StaticProvider) FetchLeagueInfo(ctx context.Context, league domain.League) (domain.LeagueInfo, error) {
	_ = ctx
	p.InfoCalls++
	return p.Info, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchScoreboard(ctx context.Context, league domain.League, q providers.Query) (domain.Scoreboard, error) {
	return domain.Scoreboard{}, p.Err
}

func (p ErrProvider) FetchLeagueInfo(ctx context.Context, league domain.League) (domain.LeagueInfo, error) {
	return domain.LeagueInfo{}, p.Err
}
