// Package date provides a calendar date with day granularity, the only time
// precision the tax computation deals with.
package date

import (
	"fmt"
	"time"
)

// Format is the standard string representation of a date, ISO-8601.
const Format = "2006-01-02"

// Date represents a calendar date with no time component.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns the canonical time.Time for that day (midnight UTC), so that
// two equal days always compare equal.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// String formats the date in its standard format.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date from its standard "YYYY-MM-DD" representation.
func Parse(str string) (Date, error) {
	return parse(str, Format)
}

// ParseUS parses a Date from the "M/D/YYYY" representation used by US
// brokerage exports. Single and double digit month and day are accepted.
func ParseUS(str string) (Date, error) {
	return parse(str, "1/2/2006")
}

func parse(str, format string) (Date, error) {
	on, err := time.Parse(format, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, format, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error. For tests and constants.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
