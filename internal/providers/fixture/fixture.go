package fixture

import (
	"context"
	"time"

	"espn-scores-service/internal/domain"
	"espn-scores-service/internal/providers"
)

// Provider returns static scoreboards useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchScoreboard returns a deterministic scoreboard for the league: one
// final game, one in progress, one scheduled.
func (p *Provider) FetchScoreboard(ctx context.Context, league domain.League, q providers.Query) (domain.Scoreboard, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)
	season := start.Year()
	finalHome, finalAway := 24, 17
	liveHome, liveAway := 14, 10
	gameTime := domain.NewGameTime(league.Periods, 2, "7:42")
	startTime := start.Add(4 * time.Hour).Format(time.RFC3339)

	sb := domain.Scoreboard{
		Sport:  league.Tag,
		Index:  league.Index,
		Season: &season,
		Games: []domain.Game{
			{
				ID:       "fixture-1",
				Status:   domain.StatusFinal,
				AwayTeam: domain.Team{Name: "Fixture City", Score: &finalAway},
				HomeTeam: domain.Team{Name: "Testerville", Score: &finalHome},
			},
			{
				ID:       "fixture-2",
				Status:   domain.StatusInProgress,
				AwayTeam: domain.Team{Name: "Sample Valley", Score: &liveAway},
				HomeTeam: domain.Team{Name: "Mock Harbor", Score: &liveHome},
				GameTime: &gameTime,
			},
			{
				ID:        "fixture-3",
				Status:    domain.StatusScheduled,
				AwayTeam:  domain.Team{Name: "Canned United"},
				HomeTeam:  domain.Team{Name: "Stub Rovers"},
				StartTime: &startTime,
			},
		},
	}

	switch league.Index {
	case domain.WeekIndexed:
		week := q.Week
		if week == 0 {
			week = 1
		}
		sb.Week = &week
	case domain.DateIndexed:
		date := start.Format("2006-01-02")
		sb.Date = &date
	}

	return sb, nil
}

// FetchLeagueInfo returns deterministic league metadata.
func (p *Provider) FetchLeagueInfo(ctx context.Context, league domain.League) (domain.LeagueInfo, error) {
	_ = ctx
	return domain.LeagueInfo{
		ID:           "0",
		Name:         "Fixture League",
		Abbreviation: league.Tag,
		SeasonYear:   p.now().UTC().Year(),
		SeasonType:   2,
		CurrentWeek:  1,
	}, nil
}
