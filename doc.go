// Package calgrid turns a flat stream of calendar dates into the familiar
// fixed-width text calendar — one month, or a whole year laid out as rows
// of months side by side.
//
// 🚀 What is calgrid?
//
//	A small, deterministic library built around a lazy sequence pipeline:
//		• seq/      — replayable cursors, adjacent-run grouping, boundary splitting
//		• calendar/ — calendar dates, year/month generation, month & week grouping
//		• block/    — rectangular text blocks and the horizontal compositor
//		• render/   — week, month and year formatters with tunable layout
//
// ✨ Why choose calgrid?
//
//   - Pure computation – no I/O, no globals, the same input always renders
//     the same bytes
//   - Lazy, single-pass – every stage consumes a cursor and produces one;
//     cursors are cheap to clone for independent replay
//   - Explicit layout – cell width, months per row, gutters and headers are
//     options, not buried literals
//
// The data flow mirrors the pipeline itself:
//
//	dates → ByMonth → ByWeek → FormatWeek → FormatMonth → JoinHorizontal → lines
//
// Quick ASCII example (one month block, 21 columns wide):
//
//	       January
//	        1  2  3  4  5
//	  6  7  8  9 10 11 12
//	 13 14 15 16 17 18 19
//	 20 21 22 23 24 25 26
//	 27 28 29 30 31
//
// A thin cobra binary in cmd/calgrid exposes the classic command-line
// surface: no arguments for the current year, a year, a month name, or both.
//
//	go get github.com/quennel/calgrid
package calgrid
