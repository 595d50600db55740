// Package calendar provides the calendar-date type consumed by the lunar
// engine, together with the month arithmetic the month view needs.
//
// A Date carries no time of day and no location. Its fields are unexported,
// so every Date in the program has passed through New, Parse or FromTime and
// is a real day of the proleptic Gregorian calendar.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the textual form used by Parse and String.
const Layout = "2006-01-02"

// Years outside MinYear..MaxYear have no four-digit Layout form and are
// rejected by New.
const (
	MinYear = 0
	MaxYear = 9999
)

const secondsPerDay = 24 * 60 * 60

// Date is a single calendar day.
type Date struct {
	year  int
	month time.Month
	day   int
}

// New returns the Date for year/month/day, rejecting values such as
// month 13, day 32 or February 30.
func New(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("invalid year %d: must be between %d and %d", year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("invalid month %d: must be between 1 and 12", month)
	}
	if n := DaysIn(year, month); day < 1 || day > n {
		return Date{}, fmt.Errorf("invalid day %d for %04d-%02d: must be between 1 and %d", day, year, int(month), n)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNew is like New but panics on an invalid date. Intended for
// constants and tests.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar day of t in t's own location.
// The time of day is discarded.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current local calendar day.
func Today() Date {
	return FromTime(time.Now())
}

// Parse parses a date in YYYY-MM-DD form. Surrounding whitespace is
// ignored; anything else that is not exactly Layout is an error.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD: %w", s, err)
	}
	return FromTime(t), nil
}

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date, which is never returned by
// the constructors.
func (d Date) IsZero() bool { return d.month == 0 }

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysSince returns the number of whole days from other to d. It is
// negative when d is earlier than other.
func (d Date) DaysSince(other Date) int {
	return int((d.Time().Unix() - other.Time().Unix()) / secondsPerDay)
}

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// CalendarMonth returns the month containing d.
func (d Date) CalendarMonth() Month {
	return Month{year: d.year, month: d.month}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Format formats d using a time package layout.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
