// Package seq provides lazy, replayable sequence cursors and the two
// grouping primitives the calendar pipeline is built on.
//
// What:
//
//   - Cursor[E] — single-pass forward iteration with a cheap Clone that
//     yields an independent cursor at the same position (replay without
//     re-consuming the source).
//   - GroupAdjacent — splits a sequence into maximal runs of adjacent
//     elements sharing a derived key.
//   - SplitAfter — splits a sequence into chunks ending right after an
//     element that satisfies a boundary predicate.
//   - Chunk — fixed-size chunking (last chunk may be short).
//
// Why two groupers:
//
//	"Same month" is a key-equality relation and fits GroupAdjacent.
//	"Same week" is not: a week ends the moment a Saturday has been
//	consumed, which is a boundary condition on the element itself, not a
//	scalar key that stays comparable across month or year boundaries.
//
// Guarantees:
//
//   - Concatenating all runs/chunks, in order, reproduces the source.
//   - Runs and chunks are never empty; an empty source yields an empty
//     sequence of runs, never a single empty run.
//   - Only adjacent equality counts: equal keys separated by a differing
//     element start a new run.
//   - Everything is lazy and single-consumer; Clone is the only sharing
//     mechanism and copies the full cursor state, lookahead included.
//
// Complexity: every cursor operation is O(1) amortized per element
// consumed; GroupAdjacent and SplitAfter buffer one run at a time.
package seq
