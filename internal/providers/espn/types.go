package espn

// Upstream scoreboard shapes. Only the fields the normalizer consumes are
// declared; season and week information moves around between leagues, so the
// same sub-objects appear at several levels.

type scoreboardResponse struct {
	Leagues []leagueResponse `json:"leagues"`
	Season  *seasonResponse  `json:"season"`
	Week    *weekResponse    `json:"week"`
	Events  []eventResponse  `json:"events"`
}

type leagueResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Abbreviation string         `json:"abbreviation"`
	Season       seasonResponse `json:"season"`
}

type seasonResponse struct {
	Year *int               `json:"year"`
	Type seasonTypeResponse `json:"type"`
	Week *weekResponse      `json:"week"`
}

type seasonTypeResponse struct {
	Type int    `json:"type"`
	Name string `json:"name"`
}

type weekResponse struct {
	Number *int `json:"number"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Week         *weekResponse         `json:"week"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
	Status      statusResponse       `json:"status"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Score    string       `json:"score"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	DisplayName string `json:"displayName"`
}

type statusResponse struct {
	Period       int                `json:"period"`
	DisplayClock string             `json:"displayClock"`
	Type         statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	State string `json:"state"`
}
