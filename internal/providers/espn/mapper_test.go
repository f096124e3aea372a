package espn

import (
	"encoding/json"
	"strings"
	"testing"

	"espn-scores-service/internal/domain"
)

func intPtr(v int) *int { return &v }

func competitor(role, name, score string) competitorResponse {
	return competitorResponse{HomeAway: role, Score: score, Team: teamResponse{DisplayName: name}}
}

func event(id, date, state string, competitors ...competitorResponse) eventResponse {
	return eventResponse{
		ID:   id,
		Date: date,
		Competitions: []competitionResponse{{
			Competitors: competitors,
			Status:      statusResponse{Type: statusTypeResponse{State: state}},
		}},
	}
}

func TestWeekNumberFallbackChain(t *testing.T) {
	topLevel := scoreboardResponse{
		Week:   &weekResponse{Number: intPtr(11)},
		Season: &seasonResponse{Week: &weekResponse{Number: intPtr(7)}},
		Events: []eventResponse{{Week: &weekResponse{Number: intPtr(3)}}},
	}
	if got := weekNumber(topLevel); got == nil || *got != 11 {
		t.Fatalf("expected top-level week 11 to win, got %v", got)
	}

	seasonLevel := scoreboardResponse{
		Season: &seasonResponse{Week: &weekResponse{Number: intPtr(7)}},
		Events: []eventResponse{{Week: &weekResponse{Number: intPtr(3)}}},
	}
	if got := weekNumber(seasonLevel); got == nil || *got != 7 {
		t.Fatalf("expected season.week 7, got %v", got)
	}

	leagueSeason := scoreboardResponse{
		Leagues: []leagueResponse{{Season: seasonResponse{Week: &weekResponse{Number: intPtr(5)}}}},
	}
	if got := weekNumber(leagueSeason); got == nil || *got != 5 {
		t.Fatalf("expected leagues[0].season.week 5, got %v", got)
	}

	eventLevel := scoreboardResponse{
		Events: []eventResponse{{Week: &weekResponse{Number: intPtr(3)}}},
	}
	if got := weekNumber(eventLevel); got == nil || *got != 3 {
		t.Fatalf("expected first event's week 3, got %v", got)
	}

	if got := weekNumber(scoreboardResponse{}); got != nil {
		t.Fatalf("expected nil week when absent everywhere, got %d", *got)
	}
}

func TestSeasonYearFallsBackToLeagues(t *testing.T) {
	raw := scoreboardResponse{Season: &seasonResponse{Year: intPtr(2025)}}
	if got := seasonYear(raw); got == nil || *got != 2025 {
		t.Fatalf("expected top-level season year, got %v", got)
	}

	raw = scoreboardResponse{Leagues: []leagueResponse{{Season: seasonResponse{Year: intPtr(2026)}}}}
	if got := seasonYear(raw); got == nil || *got != 2026 {
		t.Fatalf("expected leagues fallback year, got %v", got)
	}

	if got := seasonYear(scoreboardResponse{}); got != nil {
		t.Fatalf("expected nil season year, got %d", *got)
	}
}

func TestNormalizeWeekIndexedNeverCarriesDate(t *testing.T) {
	raw := scoreboardResponse{
		Week:   &weekResponse{Number: intPtr(2)},
		Events: []eventResponse{event("1", "2025-09-14T17:00Z", "pre", competitor("home", "A", ""), competitor("away", "B", ""))},
	}
	sb := normalizeScoreboard(raw, domain.NFL)
	if sb.Week == nil || *sb.Week != 2 {
		t.Fatalf("expected week 2, got %v", sb.Week)
	}
	if sb.Date != nil {
		t.Fatalf("week-indexed league must not carry a date, got %q", *sb.Date)
	}
	if sb.Sport != "NFL" {
		t.Fatalf("expected sport NFL, got %s", sb.Sport)
	}
}

func TestNormalizeDateIndexedTruncatesTimestamp(t *testing.T) {
	raw := scoreboardResponse{
		Events: []eventResponse{event("1", "2025-11-18T00:30Z", "pre", competitor("home", "A", ""), competitor("away", "B", ""))},
	}
	sb := normalizeScoreboard(raw, domain.NBA)
	if sb.Date == nil || *sb.Date != "2025-11-18" {
		t.Fatalf("expected date 2025-11-18, got %v", sb.Date)
	}
	if sb.Week != nil {
		t.Fatalf("date-indexed league must not carry a week, got %d", *sb.Week)
	}
}

func TestNormalizeDateNilWithoutEvents(t *testing.T) {
	sb := normalizeScoreboard(scoreboardResponse{}, domain.NHL)
	if sb.Date != nil {
		t.Fatalf("expected nil date, got %q", *sb.Date)
	}
	if len(sb.Games) != 0 {
		t.Fatalf("expected no games, got %d", len(sb.Games))
	}
}

func TestParseGamesSkipsUnusableEvents(t *testing.T) {
	events := []eventResponse{
		{ID: "no-competition"},
		event("one-competitor", "", "post", competitor("home", "Lonely", "10")),
		event("no-roles", "", "post", competitor("", "A", "1"), competitor("", "B", "2")),
		event("missing-away", "", "post", competitor("home", "A", "1"), competitor("home", "B", "2")),
		event("keeper", "", "post", competitor("home", "Home", "24"), competitor("away", "Away", "17")),
	}

	games := parseGames(events, domain.NFL)
	if len(games) != 1 {
		t.Fatalf("expected only the complete event to survive, got %d", len(games))
	}
	if games[0].ID != "keeper" {
		t.Fatalf("unexpected surviving event %s", games[0].ID)
	}
}

func TestParseGamesPreservesEventOrder(t *testing.T) {
	events := []eventResponse{
		event("first", "", "post", competitor("home", "A", "1"), competitor("away", "B", "2")),
		event("second", "", "post", competitor("home", "C", "3"), competitor("away", "D", "4")),
	}
	games := parseGames(events, domain.NBA)
	if len(games) != 2 || games[0].ID != "first" || games[1].ID != "second" {
		t.Fatalf("expected upstream order preserved, got %+v", games)
	}
}

func TestMapStatusClosedClassification(t *testing.T) {
	cases := map[string]domain.GameStatus{
		"post":      domain.StatusFinal,
		"in":        domain.StatusInProgress,
		"pre":       domain.StatusScheduled,
		"postponed": domain.StatusScheduled,
		"":          domain.StatusScheduled,
	}
	for state, want := range cases {
		if got := mapStatus(state); got != want {
			t.Fatalf("state %q expected %s, got %s", state, want, got)
		}
	}
}

func TestFinalGameCarriesScoresOnly(t *testing.T) {
	games := parseGames([]eventResponse{
		event("401", "2025-11-16T18:00Z", "post", competitor("home", "Home Team", "17"), competitor("away", "Away Team", "24")),
	}, domain.NFL)

	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	game := games[0]
	if game.Status != domain.StatusFinal {
		t.Fatalf("expected final, got %s", game.Status)
	}
	if game.AwayTeam.Score == nil || *game.AwayTeam.Score != 24 {
		t.Fatalf("unexpected away score %v", game.AwayTeam.Score)
	}
	if game.HomeTeam.Score == nil || *game.HomeTeam.Score != 17 {
		t.Fatalf("unexpected home score %v", game.HomeTeam.Score)
	}
	if game.GameTime != nil || game.StartTime != nil {
		t.Fatalf("final games should carry neither time field: %+v", game)
	}
}

func TestScheduledGameForcesNullScoreAndStartTime(t *testing.T) {
	games := parseGames([]eventResponse{
		event("402", "2025-11-20T01:00Z", "pre", competitor("home", "Home", "3"), competitor("away", "Away", "0")),
	}, domain.NHL)

	game := games[0]
	if game.Status != domain.StatusScheduled {
		t.Fatalf("expected scheduled, got %s", game.Status)
	}
	if game.HomeTeam.Score != nil || game.AwayTeam.Score != nil {
		t.Fatalf("scheduled games never show a score: %+v", game)
	}
	if game.StartTime == nil || *game.StartTime != "2025-11-20T01:00Z" {
		t.Fatalf("expected raw upstream timestamp, got %v", game.StartTime)
	}
	if game.GameTime != nil {
		t.Fatal("scheduled games carry no game_time")
	}
}

func TestScheduledGameWithoutDateKeepsStartTimeKey(t *testing.T) {
	games := parseGames([]eventResponse{
		event("404", "", "pre", competitor("home", "Home", ""), competitor("away", "Away", "")),
	}, domain.NHL)

	game := games[0]
	if game.StartTime != nil {
		t.Fatalf("expected nil start time, got %v", game.StartTime)
	}

	raw, err := json.Marshal(game)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"start_time":null`) {
		t.Fatalf("scheduled games without a date still serialize the key: %s", raw)
	}
}

func TestInProgressGameTimePerFamily(t *testing.T) {
	ev := event("403", "", "in", competitor("home", "Home", "55"), competitor("away", "Away", "50"))
	ev.Competitions[0].Status.Period = 5
	ev.Competitions[0].Status.DisplayClock = "2:14"

	football := parseGames([]eventResponse{ev}, domain.CFB)[0]
	if football.GameTime == nil || football.GameTime.Quarter != "OT" || football.GameTime.TimeRemaining != "2:14" {
		t.Fatalf("unexpected football game time %+v", football.GameTime)
	}
	if football.StartTime != nil {
		t.Fatal("in-progress games carry no start_time")
	}

	basketball := parseGames([]eventResponse{ev}, domain.CBB)[0]
	if basketball.GameTime == nil || basketball.GameTime.Period != "OT" || basketball.GameTime.Clock != "2:14" {
		t.Fatalf("unexpected basketball game time %+v", basketball.GameTime)
	}

	ev.Competitions[0].Status.Period = 4
	hockey := parseGames([]eventResponse{ev}, domain.NHL)[0]
	if hockey.GameTime == nil || hockey.GameTime.Period != "OT" {
		t.Fatalf("expected NHL period 4 to label OT, got %+v", hockey.GameTime)
	}
}

func TestInProgressMissingClockDefaults(t *testing.T) {
	ev := event("404", "", "in", competitor("home", "Home", "7"), competitor("away", "Away", "0"))
	ev.Competitions[0].Status.Period = 1

	game := parseGames([]eventResponse{ev}, domain.NFL)[0]
	if game.GameTime.TimeRemaining != "0:00" {
		t.Fatalf("expected default clock, got %q", game.GameTime.TimeRemaining)
	}
	if game.GameTime.Quarter != "Q1" {
		t.Fatalf("expected Q1, got %q", game.GameTime.Quarter)
	}
}

func TestParseTeamUnparseableScoreIsNull(t *testing.T) {
	team := parseTeam(competitor("home", "Home", "N/A"), domain.StatusFinal)
	if team.Score != nil {
		t.Fatalf("expected nil score for unparseable value, got %d", *team.Score)
	}

	team = parseTeam(competitor("home", "", " 24 "), domain.StatusFinal)
	if team.Score == nil || *team.Score != 24 {
		t.Fatalf("expected whitespace-tolerant parse, got %v", team.Score)
	}
	if team.Name != "" {
		t.Fatalf("expected empty name verbatim, got %q", team.Name)
	}
}

// End-to-end through the real JSON tags.
func TestNormalizeFromRawJSON(t *testing.T) {
	payload := `{
		"leagues": [{"id": "28", "name": "National Football League", "abbreviation": "NFL",
			"season": {"year": 2025, "type": {"type": 2, "name": "Regular Season"}}}],
		"week": {"number": 11},
		"events": [{
			"id": "401547931",
			"date": "2025-11-16T18:00Z",
			"competitions": [{
				"competitors": [
					{"homeAway": "home", "score": "17", "team": {"displayName": "Green Bay Packers"}},
					{"homeAway": "away", "score": "24", "team": {"displayName": "Chicago Bears"}}
				],
				"status": {"period": 4, "displayClock": "0:00", "type": {"state": "post"}}
			}]
		}]
	}`

	var raw scoreboardResponse
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}

	sb := normalizeScoreboard(raw, domain.NFL)
	if sb.Week == nil || *sb.Week != 11 {
		t.Fatalf("expected week 11, got %v", sb.Week)
	}
	if sb.Season == nil || *sb.Season != 2025 {
		t.Fatalf("expected season 2025, got %v", sb.Season)
	}
	if len(sb.Games) != 1 {
		t.Fatalf("expected one game, got %d", len(sb.Games))
	}
	game := sb.Games[0]
	if game.Status != domain.StatusFinal || game.AwayTeam.Name != "Chicago Bears" {
		t.Fatalf("unexpected game %+v", game)
	}
	if *game.AwayTeam.Score != 24 || *game.HomeTeam.Score != 17 {
		t.Fatalf("unexpected scores %+v", game)
	}
}
