package domain

import (
	"fmt"
	"strconv"
)

// regulationPeriods returns how many periods a league family plays before
// overtime: 4 quarters for football, 4 periods for basketball, 3 for hockey.
func regulationPeriods(family PeriodFamily) int {
	if family == PeriodsHockey {
		return 3
	}
	return 4
}

// PeriodLabel renders a period number for display. The first overtime is
// "OT", later ones "OT2", "OT3", and so on. Regulation periods are plain
// numbers except football, which prefixes them with "Q".
func PeriodLabel(family PeriodFamily, period int) string {
	regulation := regulationPeriods(family)
	switch {
	case period == regulation+1:
		return "OT"
	case period > regulation+1:
		return fmt.Sprintf("OT%d", period-regulation)
	}
	if family == PeriodsFootball {
		return fmt.Sprintf("Q%d", period)
	}
	return strconv.Itoa(period)
}

// NewGameTime builds the family-appropriate game-time block from the raw
// period number and display clock.
func NewGameTime(family PeriodFamily, period int, displayClock string) GameTime {
	label := PeriodLabel(family, period)
	if family == PeriodsFootball {
		return GameTime{Quarter: label, TimeRemaining: displayClock}
	}
	return GameTime{Period: label, Clock: displayClock}
}
