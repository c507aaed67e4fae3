package calendar

import (
	"time"

	"github.com/quennel/calgrid/seq"
)

// ByMonth partitions a date stream into runs of equal month, keyed on
// Date.Month via seq.GroupAdjacent.
//
// Precondition: src is in non-decreasing calendar order within one year.
// Fed a full year from YearDates, it produces exactly 12 runs, run i
// starting at day 1 of month i+1.
// Complexity: O(1) amortized per date; lazy.
func ByMonth(src seq.Cursor[Date]) seq.Cursor[seq.Run[Date, time.Month]] {
	return seq.GroupAdjacent(src, func(d Date) time.Month { return d.Month })
}

// ByWeek partitions a date stream into Sun–Sat weeks: each chunk closes
// the moment a Saturday has been consumed, or when the source ends. The
// first chunk of a month may start mid-week and the last may end mid-week,
// so chunks hold between 1 and 7 dates.
// Complexity: O(1) amortized per date; lazy.
func ByWeek(src seq.Cursor[Date]) seq.Cursor[[]Date] {
	return seq.SplitAfter(src, func(d Date) bool { return d.Weekday() == time.Saturday })
}
