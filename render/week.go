package render

import (
	"fmt"
	"strings"

	"github.com/quennel/calgrid/calendar"
)

// FormatWeek renders one week run as a single fixed-width line of exactly
// o.WeekWidth() characters: CellWidth spaces per skipped leading weekday,
// each day-of-month right-justified in a CellWidth cell, then trailing
// blank cells out to Saturday. The width holds for every run length and
// start day — that is the invariant month blocks are built on.
//
// Contract: week holds 1..7 chronological dates. A violation panics; it
// means the week grouping upstream is broken, which is not a condition to
// recover from.
//
// Complexity: O(CellWidth · DaysPerWeek) per call.
func FormatWeek(week []calendar.Date, o Options) string {
	if len(week) == 0 || len(week) > DaysPerWeek {
		panic(fmt.Sprintf("render: week run must hold 1..7 dates, got %d", len(week)))
	}

	start := int(week[0].Weekday())
	if start+len(week) > DaysPerWeek {
		panic(fmt.Sprintf("render: malformed week run: %d dates starting on weekday %d", len(week), start))
	}

	var sb strings.Builder
	sb.Grow(o.WeekWidth())

	sb.WriteString(strings.Repeat(" ", o.CellWidth*start))
	for _, d := range week {
		sb.WriteString(fmt.Sprintf("%*d", o.CellWidth, d.Day))
	}
	sb.WriteString(strings.Repeat(" ", o.CellWidth*(DaysPerWeek-start-len(week))))

	return sb.String()
}
