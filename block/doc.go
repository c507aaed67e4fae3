// Package block models rectangles of text and composites them side by
// side into aligned rows.
//
// What:
//
//   - Block — an ordered set of lines that all share one width. Blocks are
//     immutable once built; months of different heights are simply blocks
//     of different heights.
//   - JoinHorizontal — the compositor. Takes a replayable cursor of blocks
//     and lazily emits rows: each block contributes its line at the current
//     index, or a blank filler of its own width once it has run out, joined
//     by a fixed gutter string.
//
// The width contract:
//
//	Every block's column width is captured exactly once, from a clone of
//	the input cursor, before a single row is produced. Padding therefore
//	never loses a width, even for a block that exhausts on the very first
//	row. Rows keep coming until every block is exhausted at the same time
//	(a ragged bottom pads out, it is never truncated).
//
// Errors:
//
//   - ErrRaggedLines — New was given lines of differing widths.
//
// Complexity: New is O(total bytes); JoinHorizontal pre-scan is O(n)
// blocks, each row O(total row width).
package block
