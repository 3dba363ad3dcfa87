package season

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxWeeksPerMonth caps the number of week slots a month can carry.
const MaxWeeksPerMonth = 5

// Domain errors
var (
	ErrUnknownMonth = errors.New("unknown season month")
	ErrInvalidYear  = errors.New("academic year must be between 2000 and 2100")
)

// AcademicYear identifies a September–June season by its starting calendar year.
type AcademicYear int

// MonthKey is the stable identifier of a season month ("september" … "june").
type MonthKey string

// Season month keys, in season order.
const (
	September MonthKey = "september"
	October   MonthKey = "october"
	November  MonthKey = "november"
	December  MonthKey = "december"
	January   MonthKey = "january"
	February  MonthKey = "february"
	March     MonthKey = "march"
	April     MonthKey = "april"
	May       MonthKey = "may"
	June      MonthKey = "june"
)

// Month is one of the ten fixed season months.
type Month struct {
	Key    MonthKey
	Number time.Month
}

// Months lists the season months in order, September first.
var Months = []Month{
	{September, time.September},
	{October, time.October},
	{November, time.November},
	{December, time.December},
	{January, time.January},
	{February, time.February},
	{March, time.March},
	{April, time.April},
	{May, time.May},
	{June, time.June},
}

// Week describes one ordinal week of a calendar month.
type Week struct {
	Index int // 1-based
}

// Validate checks the academic year is in a sane range.
// PRE: none
// POST: Returns ErrInvalidYear when out of range
func (y AcademicYear) Validate() error {
	if y < 2000 || y > 2100 {
		return ErrInvalidYear
	}
	return nil
}

// CalendarYear returns the calendar year a season month falls in.
// January through June belong to the following calendar year.
func (y AcademicYear) CalendarYear(month time.Month) int {
	if month >= time.January && month <= time.June {
		return int(y) + 1
	}
	return int(y)
}

// Start returns the first day of the season (1 September).
func (y AcademicYear) Start(loc *time.Location) time.Time {
	return time.Date(int(y), time.September, 1, 0, 0, 0, 0, loc)
}

// End returns the day after the season's last day (1 July of the following year).
func (y AcademicYear) End(loc *time.Location) time.Time {
	return time.Date(int(y)+1, time.July, 1, 0, 0, 0, 0, loc)
}

// Contains reports whether t falls between 1 September and 30 June of the season.
func (y AcademicYear) Contains(t time.Time) bool {
	return !t.Before(y.Start(t.Location())) && t.Before(y.End(t.Location()))
}

// ClampMonth returns the season month closest to t: t's own month when the season
// contains it, September before the season and June after it.
func (y AcademicYear) ClampMonth(t time.Time) (year int, month time.Month) {
	switch {
	case t.Before(y.Start(t.Location())):
		return int(y), time.September
	case !t.Before(y.End(t.Location())):
		return int(y) + 1, time.June
	}
	return t.Year(), t.Month()
}

// Current returns the academic year containing the given date.
func Current(now time.Time) AcademicYear {
	if now.Month() >= time.September {
		return AcademicYear(now.Year())
	}
	return AcademicYear(now.Year() - 1)
}

// ParseMonthKey resolves a month key, case-insensitively.
// PRE: none
// POST: Returns the season month or ErrUnknownMonth
func ParseMonthKey(s string) (Month, error) {
	key := MonthKey(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range Months {
		if m.Key == key {
			return m, nil
		}
	}
	return Month{}, fmt.Errorf("%w: %q", ErrUnknownMonth, s)
}

// DaysInMonth returns the Gregorian day count of a month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthPrefix returns the "YYYY-MM" prefix matching ISO dates of a month.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// WeekCount returns the number of week rows a month spans, capped at MaxWeeksPerMonth.
// The offset is the zero-based weekday of day 1 with Sunday as 0.
// INVARIANT: 1 <= result <= MaxWeeksPerMonth
func WeekCount(year int, month time.Month) int {
	days := DaysInMonth(year, month)
	offset := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	n := (days + offset + 6) / 7
	if n > MaxWeeksPerMonth {
		n = MaxWeeksPerMonth
	}
	return n
}

// BuildWeeks returns the ordered week descriptors of a month.
// Months spanning six calendar rows lose their sixth row.
// PRE: month is in 1..12
// POST: Returns between 1 and MaxWeeksPerMonth weeks, indexed from 1
func BuildWeeks(year int, month time.Month) []Week {
	n := WeekCount(year, month)
	weeks := make([]Week, n)
	for i := range weeks {
		weeks[i] = Week{Index: i + 1}
	}
	return weeks
}
