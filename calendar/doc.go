// Package calendar supplies the date values the formatting pipeline
// consumes: generation of a year's (or month's) days as a replayable
// cursor, and the month/week grouping stages built on package seq.
//
// What:
//
//   - Date — an immutable (year, month, day) value; the weekday is derived
//     through the stdlib time package, never stored.
//   - YearDates / MonthDates — ordered, gap-free, replayable date cursors.
//   - ByMonth — partitions a date stream into per-month runs
//     (seq.GroupAdjacent keyed on the month).
//   - ByWeek — partitions a date stream into Sun–Sat weeks
//     (seq.SplitAfter closing each chunk on a Saturday).
//   - ParseMonth — case-insensitive month-name prefix matching for the
//     command-line surface.
//
// Why ByWeek is not a key grouping:
//
//	A week has no scalar key that stays comparable across month and year
//	boundaries (ISO week numbers wrap ambiguously at year edges). Closing
//	a chunk directly on "the date just consumed is a Saturday" sidesteps
//	the whole question.
//
// Errors:
//
//   - ErrUnknownMonth — a token matches no month name prefix.
//
// All functions are pure; nothing here reads the clock except callers who
// explicitly pass time.Now().Year().
package calendar
