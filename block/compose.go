package block

import (
	"strings"

	"github.com/quennel/calgrid/seq"
)

// rowCursor lazily emits composited rows over a fixed set of blocks.
// widths is captured at construction and never consulted against the
// blocks again; row is the shared line index across all blocks.
type rowCursor struct {
	blocks []Block
	widths []int
	gutter string
	row    int
	height int // max block height; the row count
}

// JoinHorizontal composites independently sized blocks into aligned rows.
//
// The input cursor must be replayable (support Clone): every block's
// column width is recorded from a clone before any row is produced, so
// padding keeps working after a block has run out of lines. Each emitted
// row joins, per block, its line at the current index — or width-many
// spaces once the block is exhausted — with the fixed gutter in between.
//
// The row sequence ends exactly when all blocks are simultaneously
// exhausted: the row count equals the maximum block height, and shorter
// blocks pad out a ragged bottom rather than truncating it. An empty
// input produces an empty row sequence.
//
// Complexity: O(n) pre-scan over n blocks, then O(total width) per row.
func JoinHorizontal(blocks seq.Cursor[Block], gutter string) seq.Cursor[string] {
	// Width pre-scan on an independent clone; the primary cursor has not
	// moved when consumption starts below.
	var widths []int
	scan := blocks.Clone()
	for b, ok := scan.Next(); ok; b, ok = scan.Next() {
		widths = append(widths, b.Width())
	}

	rc := &rowCursor{widths: widths, gutter: gutter}
	for b, ok := blocks.Next(); ok; b, ok = blocks.Next() {
		rc.blocks = append(rc.blocks, b)
		if b.Height() > rc.height {
			rc.height = b.Height()
		}
	}

	return rc
}

// Next emits the next composited row, or false once every block is
// exhausted.
func (c *rowCursor) Next() (string, bool) {
	if c.row >= c.height {
		return "", false
	}

	var sb strings.Builder
	for i, b := range c.blocks {
		if i > 0 {
			sb.WriteString(c.gutter)
		}
		if c.row < b.Height() {
			sb.WriteString(b.Line(c.row))
		} else {
			// Exhausted block: blank filler at its recorded width.
			sb.WriteString(strings.Repeat(" ", c.widths[i]))
		}
	}
	c.row++

	return sb.String(), true
}

// Clone copies the row cursor; blocks are immutable so sharing them is safe.
func (c *rowCursor) Clone() seq.Cursor[string] {
	cp := *c

	return &cp
}
