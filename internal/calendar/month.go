package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Month identifies a calendar month of a particular year.
type Month struct {
	year  int
	month time.Month
}

// NewMonth returns the Month for year and month.
func NewMonth(year int, month time.Month) (Month, error) {
	if year < MinYear || year > MaxYear {
		return Month{}, fmt.Errorf("invalid year %d: must be between %d and %d", year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return Month{}, fmt.Errorf("invalid month %d: must be between 1 and 12", month)
	}
	return Month{year: year, month: month}, nil
}

// MustNewMonth is like NewMonth but panics on an invalid month.
func MustNewMonth(year int, month time.Month) Month {
	m, err := NewMonth(year, month)
	if err != nil {
		panic(err)
	}
	return m
}

// MonthLayout is the textual form used by ParseMonth and Month.String.
const MonthLayout = "2006-01"

// ParseMonth parses a month in YYYY-MM form.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM: %w", s, err)
	}
	return FromTime(t).CalendarMonth(), nil
}

// Year returns the year of m.
func (m Month) Year() int { return m.year }

// Month returns the month of the year of m.
func (m Month) Month() time.Month { return m.month }

// Len returns the number of days in m.
func (m Month) Len() int { return DaysIn(m.year, m.month) }

// First returns the first day of m.
func (m Month) First() Date { return Date{year: m.year, month: m.month, day: 1} }

// Last returns the last day of m.
func (m Month) Last() Date { return Date{year: m.year, month: m.month, day: m.Len()} }

// Add returns the month n months after m (before, for negative n).
func (m Month) Add(n int) Month {
	idx := m.year*12 + int(m.month-1) + n
	y, mo := idx/12, idx%12
	if mo < 0 {
		mo += 12
		y--
	}
	return Month{year: y, month: time.Month(mo + 1)}
}

// Contains reports whether d falls within m.
func (m Month) Contains(d Date) bool {
	return d.year == m.year && d.month == m.month
}

// Days returns every day of m in order.
func (m Month) Days() []Date {
	days := make([]Date, m.Len())
	for i := range days {
		days[i] = Date{year: m.year, month: m.month, day: i + 1}
	}
	return days
}

// LeadingBlanks returns how many empty cells precede the first day of m
// in a week grid whose columns start on weekStart.
func (m Month) LeadingBlanks(weekStart time.Weekday) int {
	return (int(m.First().Weekday()) - int(weekStart) + 7) % 7
}

// Title returns the month as "January 2006".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.month, m.year)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.year, int(m.month))
}

// WeekdayLabels returns the three-letter weekday names in grid order for a
// week starting on weekStart.
func WeekdayLabels(weekStart time.Weekday) []string {
	labels := make([]string, 7)
	for i := range labels {
		labels[i] = time.Weekday((int(weekStart) + i) % 7).String()[:3]
	}
	return labels
}

// ParseWeekday parses "sunday"/"monday" (any case, or a three-letter
// prefix) into a time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	lc := strings.ToLower(strings.TrimSpace(s))
	if len(lc) >= 3 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.HasPrefix(strings.ToLower(wd.String()), lc) {
				return wd, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", s)
}
