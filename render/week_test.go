package render_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quennel/calgrid/calendar"
	"github.com/quennel/calgrid/render"
)

// weekFrom builds a chronological run of n dates starting at the given
// day of January 2013 (2013-01-06 was a Sunday, which makes weekday
// arithmetic trivial in these tests).
func weekFrom(startDay, n int) []calendar.Date {
	week := make([]calendar.Date, n)
	for i := range week {
		week[i] = calendar.Date{Year: 2013, Month: time.January, Day: startDay + i}
	}

	return week
}

// TestFormatWeek_WidthInvariant verifies the key invariant: for every run
// length L in 1..7 and every feasible leading weekday D, the formatted
// line is exactly DaysPerWeek × CellWidth characters.
func TestFormatWeek_WidthInvariant(t *testing.T) {
	o := render.DefaultOptions()
	for d := 0; d < render.DaysPerWeek; d++ {
		for l := 1; l+d <= render.DaysPerWeek; l++ {
			// Jan 6 2013 is a Sunday; Jan 6+d has weekday d.
			line := render.FormatWeek(weekFrom(6+d, l), o)
			assert.Len(t, line, o.WeekWidth(), "L=%d D=%d", l, d)
		}
	}
}

// TestFormatWeek_FullWeek verifies a Sunday-through-Saturday run with
// two-digit days: no leading or trailing padding, cells right-justified.
func TestFormatWeek_FullWeek(t *testing.T) {
	line := render.FormatWeek(weekFrom(6, 7), render.DefaultOptions())
	assert.Equal(t, "  6  7  8  9 10 11 12", line)
}

// TestFormatWeek_LeadingPartial verifies a week starting mid-week: Jan 1
// 2013 was a Tuesday, so two leading blank cells precede the 1.
func TestFormatWeek_LeadingPartial(t *testing.T) {
	line := render.FormatWeek(weekFrom(1, 5), render.DefaultOptions())
	assert.Equal(t, "        1  2  3  4  5", line)
}

// TestFormatWeek_TrailingPartial verifies a source-exhausted tail week:
// Jan 27 2013 was a Sunday, five dates, two trailing blank cells.
func TestFormatWeek_TrailingPartial(t *testing.T) {
	line := render.FormatWeek(weekFrom(27, 5), render.DefaultOptions())
	assert.Equal(t, " 27 28 29 30 31      ", line)
}

// TestFormatWeek_SingleDay verifies the L=1 extremes: a lone Sunday and a
// lone Saturday.
func TestFormatWeek_SingleDay(t *testing.T) {
	o := render.DefaultOptions()

	sunday := render.FormatWeek(weekFrom(6, 1), o)
	assert.Equal(t, "  6                  ", sunday)

	saturday := render.FormatWeek(weekFrom(5, 1), o)
	assert.Equal(t, "                    5", saturday)
}

// TestFormatWeek_ContractPanics verifies that empty and malformed runs
// panic rather than degrade: they mean the grouping stage is broken.
func TestFormatWeek_ContractPanics(t *testing.T) {
	o := render.DefaultOptions()

	require.Panics(t, func() { render.FormatWeek(nil, o) }, "empty run")
	require.Panics(t, func() { render.FormatWeek(weekFrom(6, 8), o) }, "over-long run")
	// 7 dates starting on a Tuesday would run past Saturday.
	require.Panics(t, func() { render.FormatWeek(weekFrom(1, 7), o) }, "run crossing Saturday")
}

// TestFormatWeek_WiderCells verifies the cell width option flows through.
func TestFormatWeek_WiderCells(t *testing.T) {
	o := render.DefaultOptions()
	o.CellWidth = 4

	line := render.FormatWeek(weekFrom(6, 2), o)
	assert.Equal(t, "   6   7                    ", line)
	assert.Len(t, line, 4*render.DaysPerWeek)
}
