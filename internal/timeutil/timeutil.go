package timeutil

import "time"

// CompactDateLayout is the date form the upstream API expects (YYYYMMDD).
const CompactDateLayout = "20060102"

// DateLayout is the canonical hyphenated date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var acceptedLayouts = []string{CompactDateLayout, DateLayout, "01/02/2006"}

// ParseDate parses a date string in any accepted layout.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDate converts an accepted date form to the upstream compact form.
// Anything unrecognized is passed through unchanged so the upstream can make
// a best-effort attempt.
func NormalizeDate(value string) string {
	if t, ok := ParseDate(value); ok {
		return t.Format(CompactDateLayout)
	}
	return value
}

// FormatDate formats a time as YYYYMMDD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(CompactDateLayout)
}
