package scores

import (
	"strconv"
	"strings"

	"espn-scores-service/internal/domain"
)

// Conference/group tables for the college leagues. Names resolve
// case-insensitively with surrounding whitespace ignored; numeric inputs
// pass through as raw group IDs.

var cfbConferences = map[string]int{
	"acc":                          1,
	"atlantic coast":               1,
	"atlantic coast conference":    1,
	"big 12":                       4,
	"big12":                        4,
	"big 10":                       5,
	"big10":                        5,
	"big ten":                      5,
	"bigten":                       5,
	"sec":                          8,
	"southeastern":                 8,
	"southeastern conference":      8,
	"american":                     151,
	"aac":                          151,
	"american athletic":            151,
	"american athletic conference": 151,
	"cusa":                         12,
	"c-usa":                        12,
	"conference usa":               12,
	"mac":                          15,
	"mid-american":                 15,
	"mid american":                 15,
	"mountain west":                17,
	"mwc":                          17,
	"sun belt":                     37,
	"sunbelt":                      37,
	"big sky":                      20,
	"caa":                          48,
	"coastal athletic":             48,
	"ivy":                          22,
	"ivy league":                   22,
	"mvfc":                         21,
	"missouri valley":              21,
	"pioneer":                      28,
	"swac":                         31,
	"southwestern athletic":        31,
}

var cbbConferences = map[string]int{
	"acc":                       2,
	"atlantic coast":            2,
	"atlantic coast conference": 2,
	"big east":                  4,
	"bigeast":                   4,
	"big 12":                    8,
	"big12":                     8,
	"big 10":                    7,
	"big10":                     7,
	"big ten":                   7,
	"bigten":                    7,
	"sec":                       23,
	"southeastern":              23,
	"southeastern conference":   23,
	"american":                  62,
	"aac":                       62,
	"american athletic":         62,
	"atlantic 10":               3,
	"a10":                       3,
	"a-10":                      3,
	"cusa":                      11,
	"c-usa":                     11,
	"conference usa":            11,
	"mac":                       15,
	"mid-american":              15,
	"mid american":              15,
	"mountain west":             17,
	"mwc":                       17,
	"pac 12":                    21,
	"pac-12":                    21,
	"sun belt":                  37,
	"sunbelt":                   37,
	"wcc":                       18,
	"west coast":                18,
	"west coast conference":     18,
}

func conferenceTable(league domain.League) map[string]int {
	switch league.Tag {
	case domain.CFB.Tag:
		return cfbConferences
	case domain.CBB.Tag:
		return cbbConferences
	}
	return nil
}

// ResolveConference turns a conference name or raw group ID into the
// upstream numeric group identifier for the league.
func ResolveConference(league domain.League, nameOrID string) (int, error) {
	table := conferenceTable(league)
	if table == nil {
		return 0, &UnknownConferenceError{League: league.Tag, Name: nameOrID}
	}

	trimmed := strings.TrimSpace(nameOrID)
	if id, err := strconv.Atoi(trimmed); err == nil {
		return id, nil
	}
	if id, ok := table[strings.ToLower(trimmed)]; ok {
		return id, nil
	}
	return 0, &UnknownConferenceError{League: league.Tag, Name: nameOrID}
}
