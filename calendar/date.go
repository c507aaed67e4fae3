package calendar

import (
	"fmt"
	"time"

	"github.com/quennel/calgrid/seq"
)

// Date is one calendar day. It is an immutable value: construct it, pass
// it along, never mutate it. The weekday is derivable and therefore not a
// field; see Weekday.
type Date struct {
	Year  int
	Month time.Month // 1–12
	Day   int        // 1–31
}

// Weekday returns the day of week (time.Sunday==0 .. time.Saturday==6),
// derived through the proleptic Gregorian arithmetic of the time package.
// Complexity: O(1).
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// String renders the date as YYYY-MM-DD, for logs and test diagnostics.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// YearDates returns a replayable cursor over every day of year, from
// (year, January, 1) through (year, December, 31), strictly increasing by
// one day with no gaps. Leap years fall out of the time package.
// Complexity: O(365) time and memory, once; iteration and Clone are O(1).
func YearDates(year int) seq.Cursor[Date] {
	return seq.FromSlice(datesBetween(
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
	))
}

// MonthDates returns a replayable cursor over every day of one month,
// starting at day 1. Input for the single-month formatting mode.
// Complexity: O(31) time and memory, once.
func MonthDates(year int, month time.Month) seq.Cursor[Date] {
	return seq.FromSlice(datesBetween(
		time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC),
	))
}

// datesBetween materializes [from, to) as Date values, one per day.
func datesBetween(from, to time.Time) []Date {
	var out []Date
	for t := from; t.Before(to); t = t.AddDate(0, 0, 1) {
		out = append(out, Date{Year: t.Year(), Month: t.Month(), Day: t.Day()})
	}

	return out
}
