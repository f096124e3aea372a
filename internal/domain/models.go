package domain

import "encoding/json"

// GameStatus is the closed three-way classification of a game's state.
type GameStatus string

const (
	StatusFinal      GameStatus = "final"
	StatusInProgress GameStatus = "in_progress"
	StatusScheduled  GameStatus = "scheduled"
)

// ValidStatus reports whether s is one of the three canonical statuses.
func ValidStatus(s GameStatus) bool {
	switch s {
	case StatusFinal, StatusInProgress, StatusScheduled:
		return true
	}
	return false
}

// Team is one side of a game. Score is nil for scheduled games and when the
// upstream value could not be parsed.
type Team struct {
	Name  string `json:"name"`
	Score *int   `json:"score"`
}

// GameTime carries the current period and clock of an in-progress game.
// Football leagues serialize it as quarter/time_remaining; basketball and
// hockey leagues as period/clock. Exactly one pair is populated.
type GameTime struct {
	Quarter       string `json:"quarter,omitempty"`
	TimeRemaining string `json:"time_remaining,omitempty"`
	Period        string `json:"period,omitempty"`
	Clock         string `json:"clock,omitempty"`
}

// Game is the minimal per-event record. GameTime is present only while the
// game is in progress; the start_time key only while it is scheduled (null
// when the upstream event carried no timestamp); final games carry neither.
type Game struct {
	ID        string     `json:"id"`
	Status    GameStatus `json:"status"`
	AwayTeam  Team       `json:"away_team"`
	HomeTeam  Team       `json:"home_team"`
	GameTime  *GameTime  `json:"game_time,omitempty"`
	StartTime *string    `json:"start_time,omitempty"`
}

type scheduledGame struct {
	ID        string     `json:"id"`
	Status    GameStatus `json:"status"`
	AwayTeam  Team       `json:"away_team"`
	HomeTeam  Team       `json:"home_team"`
	StartTime *string    `json:"start_time"`
}

type startedGame struct {
	ID       string     `json:"id"`
	Status   GameStatus `json:"status"`
	AwayTeam Team       `json:"away_team"`
	HomeTeam Team       `json:"home_team"`
	GameTime *GameTime  `json:"game_time,omitempty"`
}

// MarshalJSON serializes the time fields by status: scheduled games always
// carry the start_time key, even when its value is null; in-progress and
// final games never do.
func (g Game) MarshalJSON() ([]byte, error) {
	if g.Status == StatusScheduled {
		return json.Marshal(scheduledGame{ID: g.ID, Status: g.Status, AwayTeam: g.AwayTeam, HomeTeam: g.HomeTeam, StartTime: g.StartTime})
	}
	return json.Marshal(startedGame{ID: g.ID, Status: g.Status, AwayTeam: g.AwayTeam, HomeTeam: g.HomeTeam, GameTime: g.GameTime})
}

// Scoreboard is the normalized output contract. Week is meaningful only for
// week-indexed leagues and Date only for date-indexed ones; Index decides
// which of the two keys is serialized. Either value may be null when the
// upstream response did not resolve it, but the key itself is always present
// for the league's family and never for the other.
type Scoreboard struct {
	Sport  string
	Index  IndexFamily
	Week   *int
	Date   *string
	Season *int
	Games  []Game
}

type weekScoreboard struct {
	Sport  string `json:"sport"`
	Week   *int   `json:"week"`
	Season *int   `json:"season"`
	Games  []Game `json:"games"`
}

type dateScoreboard struct {
	Sport  string  `json:"sport"`
	Date   *string `json:"date"`
	Season *int    `json:"season"`
	Games  []Game  `json:"games"`
}

// MarshalJSON emits the week or date key according to the league's index
// family, never both.
func (s Scoreboard) MarshalJSON() ([]byte, error) {
	games := s.Games
	if games == nil {
		games = []Game{}
	}
	if s.Index == WeekIndexed {
		return json.Marshal(weekScoreboard{Sport: s.Sport, Week: s.Week, Season: s.Season, Games: games})
	}
	return json.Marshal(dateScoreboard{Sport: s.Sport, Date: s.Date, Season: s.Season, Games: games})
}

// LeagueInfo is the league metadata the upstream reports alongside a
// scoreboard, used to resolve the current week and season type.
type LeagueInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	SeasonYear   int    `json:"season_year"`
	SeasonType   int    `json:"season_type"`
	CurrentWeek  int    `json:"current_week"`
}
