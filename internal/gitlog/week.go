package gitlog

import (
	"fmt"
	"time"
)

// dayLayout is the date format used on the git command line and in
// report output.
const dayLayout = "2006-01-02"

// ThisWeek returns the Monday 00:00 of now's week and the Monday after
// it, covering Monday through Sunday with an exclusive upper bound.
func ThisWeek(now time.Time) (since, until time.Time) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week it ends
	}
	monday := truncateDay(now).AddDate(0, 0, -(weekday - 1))
	return monday, monday.AddDate(0, 0, 7)
}

// LastWeek returns the Monday-to-Monday range before now's week.
func LastWeek(now time.Time) (since, until time.Time) {
	monday, _ := ThisWeek(now)
	return monday.AddDate(0, 0, -7), monday
}

// ParseDay parses a YYYY-MM-DD flag value.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
