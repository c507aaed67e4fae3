package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/quennel/calgrid/block"
	"github.com/quennel/calgrid/calendar"
	"github.com/quennel/calgrid/seq"
)

// FormatMonth renders one month's dates as a block: a centered title line,
// the optional weekday header, then one FormatWeek line per Sun–Sat week.
// Every line is exactly o.WeekWidth() wide.
//
// Contract: dates is non-empty and opens at day 1 (a complete month as
// produced by ByMonth or MonthDates). A violation panics — it signals a
// broken upstream collaborator, not user input.
//
// Complexity: O(len(dates)).
func FormatMonth(dates []calendar.Date, o Options) block.Block {
	if len(dates) == 0 {
		panic("render: month input must not be empty")
	}
	if dates[0].Day != 1 {
		panic(fmt.Sprintf("render: month input must open at day 1, got %s", dates[0]))
	}

	lines := []string{center(title(dates[0], o), o.WeekWidth())}
	if o.WeekdayHeader {
		lines = append(lines, weekdayHeader(o))
	}

	weeks := calendar.ByWeek(seq.FromSlice(dates))
	for w, ok := weeks.Next(); ok; w, ok = weeks.Next() {
		lines = append(lines, FormatWeek(w, o))
	}

	return block.MustNew(lines...)
}

// title renders the month name, with the year appended when configured.
func title(first calendar.Date, o Options) string {
	if o.YearInTitle {
		return fmt.Sprintf("%s %d", first.Month, first.Year)
	}

	return first.Month.String()
}

// center pads s to width: floor((width-len)/2) leading spaces, the
// remainder trailing. Overlong titles are returned unpadded.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	lead := (width - len(s)) / 2

	return strings.Repeat(" ", lead) + s + strings.Repeat(" ", width-len(s)-lead)
}

// weekdayHeader renders the Su..Sa abbreviation line, each two-letter
// abbreviation right-justified in a CellWidth cell to line up with the
// day numbers beneath it.
func weekdayHeader(o Options) string {
	var sb strings.Builder
	sb.Grow(o.WeekWidth())
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		sb.WriteString(fmt.Sprintf("%*s", o.CellWidth, wd.String()[:2]))
	}

	return sb.String()
}
