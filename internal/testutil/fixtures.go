package testutil

import (
	"espn-scores-service/internal/domain"
)

// SampleGame returns a minimal final game fixture with the provided id.
func SampleGame(id string) domain.Game {
	home := 101
	away := 98
	return domain.Game{
		ID:       id,
		Status:   domain.StatusFinal,
		AwayTeam: domain.Team{Name: "Away", Score: &away},
		HomeTeam: domain.Team{Name: "Home", Score: &home},
	}
}

// SampleScoreboard builds a scoreboard for the league with the given games,
// keyed by week or date per the league's index family.
func SampleScoreboard(league domain.League, games ...domain.Game) domain.Scoreboard {
	board := domain.Scoreboard{
		Sport: league.Tag,
		Index: league.Index,
		Games: games,
	}
	if league.Index == domain.WeekIndexed {
		week := 1
		season := 2024
		board.Week = &week
		board.Season = &season
	} else {
		date := "2024-01-15"
		board.Date = &date
	}
	return board
}
