package render

import (
	"strings"
	"time"

	"github.com/quennel/calgrid/block"
	"github.com/quennel/calgrid/calendar"
	"github.com/quennel/calgrid/seq"
)

// FormatYear renders a full year: the year's dates are grouped into month
// runs, the runs chunked into rows of MonthsPerRow, each chunk's months
// formatted and composited side by side, and the chunks stacked with one
// blank line between them. The result carries no trailing newline.
//
// Only option violations can fail; the pipeline itself is total for any
// representable year.
//
// Complexity: O(days in year).
func FormatYear(year int, opts ...Option) (string, error) {
	o, err := build(opts)
	if err != nil {
		return "", err
	}

	months := calendar.ByMonth(calendar.YearDates(year))
	chunks := seq.Chunk(months, o.MonthsPerRow)

	var rows []string
	for chunk, ok := chunks.Next(); ok; chunk, ok = chunks.Next() {
		blocks := make([]block.Block, len(chunk))
		for i, run := range chunk {
			blocks[i] = FormatMonth(run.Items, o)
		}
		lines := seq.Collect(block.JoinHorizontal(seq.FromSlice(blocks), o.Gutter))
		rows = append(rows, strings.Join(lines, "\n"))
	}

	return strings.Join(rows, "\n\n"), nil
}

// FormatMonthOf renders a single month, bypassing the year chunking.
// Pair it with WithYearInTitle to embed the year in the title line.
//
// Complexity: O(days in month).
func FormatMonthOf(year int, m time.Month, opts ...Option) (string, error) {
	o, err := build(opts)
	if err != nil {
		return "", err
	}

	return FormatMonth(seq.Collect(calendar.MonthDates(year, m)), o).String(), nil
}
