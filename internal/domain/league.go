package domain

import "strings"

// IndexFamily says whether a league's scoreboard is addressed by week number
// or by calendar date.
type IndexFamily string

const (
	WeekIndexed IndexFamily = "week"
	DateIndexed IndexFamily = "date"
)

// PeriodFamily selects how period numbers are labeled for in-progress games.
type PeriodFamily string

const (
	PeriodsFootball   PeriodFamily = "football"
	PeriodsBasketball PeriodFamily = "basketball"
	PeriodsHockey     PeriodFamily = "hockey"
)

// League is the static configuration for one supported league: where its
// scoreboard lives upstream and which index/period family it belongs to.
// There is no behavior behind these tags.
type League struct {
	Tag       string
	SportPath string
	Index     IndexFamily
	Periods   PeriodFamily
}

var (
	NFL = League{Tag: "NFL", SportPath: "football/nfl", Index: WeekIndexed, Periods: PeriodsFootball}
	CFB = League{Tag: "CFB", SportPath: "football/college-football", Index: WeekIndexed, Periods: PeriodsFootball}
	NBA = League{Tag: "NBA", SportPath: "basketball/nba", Index: DateIndexed, Periods: PeriodsBasketball}
	CBB = League{Tag: "CBB", SportPath: "basketball/mens-college-basketball", Index: DateIndexed, Periods: PeriodsBasketball}
	NHL = League{Tag: "NHL", SportPath: "hockey/nhl", Index: DateIndexed, Periods: PeriodsHockey}
)

// Leagues lists every supported league.
var Leagues = []League{NFL, CFB, NBA, CBB, NHL}

// LeagueFromTag resolves a league by its tag, case-insensitively.
func LeagueFromTag(tag string) (League, bool) {
	for _, l := range Leagues {
		if strings.EqualFold(l.Tag, tag) {
			return l, true
		}
	}
	return League{}, false
}

func (l League) String() string {
	return l.Tag
}
