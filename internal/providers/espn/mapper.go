package espn

import (
	"strconv"
	"strings"

	"espn-scores-service/internal/domain"
)

// normalizeScoreboard reshapes a raw upstream response into the minimal
// output contract. It never fails: missing or malformed fields degrade to
// null, empty, or a skipped game.
func normalizeScoreboard(raw scoreboardResponse, league domain.League) domain.Scoreboard {
	sb := domain.Scoreboard{
		Sport:  league.Tag,
		Index:  league.Index,
		Season: seasonYear(raw),
		Games:  parseGames(raw.Events, league),
	}

	switch league.Index {
	case domain.WeekIndexed:
		sb.Week = weekNumber(raw)
	case domain.DateIndexed:
		sb.Date = eventDate(raw.Events)
	}

	return sb
}

// seasonYear reads the top-level season, falling back to the first entry of
// the leagues collection.
func seasonYear(raw scoreboardResponse) *int {
	if raw.Season != nil && raw.Season.Year != nil {
		return raw.Season.Year
	}
	if len(raw.Leagues) > 0 {
		return raw.Leagues[0].Season.Year
	}
	return nil
}

// weekNumber resolves the week through an ordered fallback chain: top-level
// week object, then season.week, then the first event's week. First found
// wins; absent everywhere means nil.
func weekNumber(raw scoreboardResponse) *int {
	if raw.Week != nil && raw.Week.Number != nil {
		return raw.Week.Number
	}
	if season := resolvedSeason(raw); season != nil && season.Week != nil && season.Week.Number != nil {
		return season.Week.Number
	}
	if len(raw.Events) > 0 && raw.Events[0].Week != nil {
		return raw.Events[0].Week.Number
	}
	return nil
}

func resolvedSeason(raw scoreboardResponse) *seasonResponse {
	if raw.Season != nil {
		return raw.Season
	}
	if len(raw.Leagues) > 0 {
		return &raw.Leagues[0].Season
	}
	return nil
}

// eventDate takes the first event's timestamp truncated to the calendar date.
func eventDate(events []eventResponse) *string {
	if len(events) == 0 || events[0].Date == "" {
		return nil
	}
	date, _, _ := strings.Cut(events[0].Date, "T")
	return &date
}

func parseGames(events []eventResponse, league domain.League) []domain.Game {
	games := make([]domain.Game, 0, len(events))

	for _, event := range events {
		if len(event.Competitions) == 0 {
			continue
		}
		competition := event.Competitions[0]
		if len(competition.Competitors) < 2 {
			continue
		}

		// Home and away are identified strictly by the role tag; an event
		// missing either role is dropped rather than inferred by position.
		var home, away *competitorResponse
		for i := range competition.Competitors {
			switch competition.Competitors[i].HomeAway {
			case "home":
				home = &competition.Competitors[i]
			case "away":
				away = &competition.Competitors[i]
			}
		}
		if home == nil || away == nil {
			continue
		}

		status := mapStatus(competition.Status.Type.State)
		game := domain.Game{
			ID:       event.ID,
			Status:   status,
			AwayTeam: parseTeam(*away, status),
			HomeTeam: parseTeam(*home, status),
		}

		switch status {
		case domain.StatusInProgress:
			gt := parseGameTime(competition.Status, league.Periods)
			game.GameTime = &gt
		case domain.StatusScheduled:
			if event.Date != "" {
				date := event.Date
				game.StartTime = &date
			}
		}

		games = append(games, game)
	}

	return games
}

// mapStatus maps the upstream status state onto the closed three-way
// classification. Anything unrecognized counts as scheduled.
func mapStatus(state string) domain.GameStatus {
	switch state {
	case "post":
		return domain.StatusFinal
	case "in":
		return domain.StatusInProgress
	default:
		return domain.StatusScheduled
	}
}

func parseTeam(competitor competitorResponse, status domain.GameStatus) domain.Team {
	team := domain.Team{Name: competitor.Team.DisplayName}

	// Scheduled games never show a score, even when the upstream carries a
	// stray value.
	if status == domain.StatusScheduled {
		return team
	}
	if score, err := strconv.Atoi(strings.TrimSpace(competitor.Score)); err == nil {
		team.Score = &score
	}
	return team
}

func parseGameTime(status statusResponse, family domain.PeriodFamily) domain.GameTime {
	clock := status.DisplayClock
	if clock == "" {
		clock = defaultDisplayClock
	}
	return domain.NewGameTime(family, status.Period, clock)
}
