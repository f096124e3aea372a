package providers

import (
	"context"
	"net/url"
	"strconv"

	"espn-scores-service/internal/domain"
)

// Query carries the upstream parameters for one scoreboard fetch. Zero
// values mean "not set" and are omitted from the request.
type Query struct {
	// Dates is an upstream-format date (YYYYMMDD), used by date-indexed leagues.
	Dates string
	// Week and SeasonType address a week-indexed league's scoreboard.
	Week       int
	SeasonType int
	// Groups filters college leagues by conference/group ID.
	Groups int
}

// Values renders the query as URL parameters.
func (q Query) Values() url.Values {
	vals := url.Values{}
	if q.Dates != "" {
		vals.Set("dates", q.Dates)
	}
	if q.Week > 0 {
		vals.Set("week", strconv.Itoa(q.Week))
	}
	if q.SeasonType > 0 {
		vals.Set("seasontype", strconv.Itoa(q.SeasonType))
	}
	if q.Groups > 0 {
		vals.Set("groups", strconv.Itoa(q.Groups))
	}
	return vals
}

// ScoreboardProvider fetches and normalizes one league's scoreboard.
// Implementations make at most one upstream request per call, never retry,
// and never cache.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, league domain.League, q Query) (domain.Scoreboard, error)
}

// LeagueInfoProvider resolves current league metadata (season year/type and
// current week).
type LeagueInfoProvider interface {
	FetchLeagueInfo(ctx context.Context, league domain.League) (domain.LeagueInfo, error)
}

// Provider combines all provider capabilities.
type Provider interface {
	ScoreboardProvider
	LeagueInfoProvider
}
