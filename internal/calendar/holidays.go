// Package calendar knows which dates are non-working and maps them to
// timeline cell style classes. The holiday set is static; it only drives
// cell styling, never duration math.
package calendar

import (
	"time"

	"github.com/hnakamura/ganttea/internal/dates"
)

// Japanese national holidays, 2024
var japaneseHolidays2024 = map[string]struct{}{
	"2024-01-01": {}, // New Year's Day
	"2024-01-08": {}, // Coming of Age Day
	"2024-02-11": {}, // National Foundation Day
	"2024-02-12": {}, // Holiday in lieu
	"2024-02-23": {}, // Emperor's Birthday
	"2024-03-20": {}, // Vernal Equinox Day
	"2024-04-29": {}, // Showa Day
	"2024-05-03": {}, // Constitution Memorial Day
	"2024-05-04": {}, // Greenery Day
	"2024-05-05": {}, // Children's Day
	"2024-05-06": {}, // Holiday in lieu
	"2024-07-15": {}, // Marine Day
	"2024-08-11": {}, // Mountain Day
	"2024-08-12": {}, // Holiday in lieu
	"2024-09-16": {}, // Respect for the Aged Day
	"2024-09-22": {}, // Autumnal Equinox Day
	"2024-09-23": {}, // Holiday in lieu
	"2024-10-14": {}, // Sports Day
	"2024-11-03": {}, // Culture Day
	"2024-11-04": {}, // Holiday in lieu
	"2024-11-23": {}, // Labour Thanksgiving Day
}

// Calendar answers styling questions about individual dates
type Calendar struct {
	holidays map[string]struct{}
}

// New returns a calendar carrying the built-in holiday set
func New() *Calendar {
	return &Calendar{holidays: japaneseHolidays2024}
}

// IsHoliday reports whether the date is a listed holiday
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.holidays[dates.Format(t)]
	return ok
}

// IsWeekend reports whether the date falls on Saturday or Sunday
func (c *Calendar) IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// CellClass returns the style class for a timeline cell on the given date.
// A holiday that also falls on a weekend gets the combined class so the
// two stylings never fight.
func (c *Calendar) CellClass(t time.Time) string {
	if c.IsHoliday(t) {
		if c.IsWeekend(t) {
			return "holiday weekend_holiday"
		}
		return "holiday"
	}
	if c.IsWeekend(t) {
		return "weekend"
	}
	return ""
}
