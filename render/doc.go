// Package render turns grouped calendar dates into fixed-width text: one
// line per week, one block per month, and a whole year as rows of months
// composited side by side.
//
// What:
//
//   - FormatWeek  — one week run (1–7 dates) into one line of exactly
//     DaysPerWeek×CellWidth characters, padded for partial weeks.
//   - FormatMonth — a month's dates into a block.Block: centered title,
//     optional weekday header, one FormatWeek line per week.
//   - FormatYear  — the full pipeline: dates → ByMonth → chunks of
//     MonthsPerRow → FormatMonth each → block.JoinHorizontal → lines,
//     month rows separated by one blank line.
//   - FormatMonthOf — single-month mode, bypassing the chunking.
//
// Options:
//
//	Layout is configuration, not literals: cell width, months per row,
//	gutter, weekday header, and year-in-title are functional options in
//	the usual WithX style. Header and year-in-title default to off so the
//	bare month block is the canonical 21-column shape.
//
// Contract violations vs user errors:
//
//	FormatWeek and FormatMonth panic on inputs that violate their
//	contracts (empty month, month not opening at day 1, week run outside
//	1..7): those indicate a broken upstream stage, not a condition to
//	recover from. Invalid option values, by contrast, surface as
//	ErrOptionViolation from the year/month entry points.
//
// Determinism: everything here is a pure function of its arguments;
// formatting the same input twice yields byte-identical output.
package render
