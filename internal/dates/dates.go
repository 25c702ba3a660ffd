// Package dates converts between calendar dates and the textual form used
// throughout the task model ("YYYY-MM-DD").
package dates

import (
	"fmt"
	"time"
)

// Layout is the canonical textual date form.
const Layout = "2006-01-02"

// Format renders a date as "YYYY-MM-DD".
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a "YYYY-MM-DD" string back into a date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// AddDays advances a date by n calendar days. Weekends and holidays count
// like any other day.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
