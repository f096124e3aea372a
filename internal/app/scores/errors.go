package scores

import (
	"errors"
	"fmt"
)

// InvalidWeekError reports a week number outside the valid range for a
// season type. Raised before any network call.
type InvalidWeekError struct {
	Week       int
	SeasonType int
	Max        int
}

func (e *InvalidWeekError) Error() string {
	return fmt.Sprintf("invalid week number %d: %s must be between 1 and %d", e.Week, seasonTypeName(e.SeasonType), e.Max)
}

// UnknownConferenceError reports a conference filter that could not be
// resolved for the league. Raised before any network call.
type UnknownConferenceError struct {
	League string
	Name   string
}

func (e *UnknownConferenceError) Error() string {
	return fmt.Sprintf("invalid conference name or ID %q for %s", e.Name, e.League)
}

// InvalidStatusError reports a status filter outside the canonical set.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status filter %q: expected final, in_progress or scheduled", e.Status)
}

// ErrNotWeekIndexed is returned when a week-based operation is invoked for a
// date-indexed league.
var ErrNotWeekIndexed = errors.New("league is not week-indexed")

// IsInvalidInput reports whether err is a caller mistake rather than an
// upstream failure.
func IsInvalidInput(err error) bool {
	var weekErr *InvalidWeekError
	var confErr *UnknownConferenceError
	var statusErr *InvalidStatusError
	return errors.As(err, &weekErr) ||
		errors.As(err, &confErr) ||
		errors.As(err, &statusErr) ||
		errors.Is(err, ErrNotWeekIndexed)
}

func seasonTypeName(seasonType int) string {
	switch seasonType {
	case SeasonPreseason:
		return "Preseason"
	case SeasonPostseason:
		return "Postseason"
	default:
		return "Regular Season"
	}
}
