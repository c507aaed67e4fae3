package block

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRaggedLines is returned by New when the given lines do not all share
// one width. A Block is a rectangle by definition.
var ErrRaggedLines = errors.New("block: lines must all have equal width")

// Block is an immutable rectangle of text: zero or more lines of
// identical width. The zero value is a valid empty block of width 0.
type Block struct {
	lines []string
	width int
}

// New builds a Block from lines, validating the rectangle invariant.
// The width is that of the first line; an empty block has width 0.
func New(lines ...string) (Block, error) {
	b := Block{}
	if len(lines) == 0 {
		return b, nil
	}
	b.width = len(lines[0])
	for i, ln := range lines {
		if len(ln) != b.width {
			return Block{}, fmt.Errorf("%w: line %d has width %d, want %d", ErrRaggedLines, i, len(ln), b.width)
		}
	}
	b.lines = append([]string(nil), lines...)

	return b, nil
}

// MustNew is New for statically known rectangles; it panics on ragged
// input. Intended for tests and literals.
func MustNew(lines ...string) Block {
	b, err := New(lines...)
	if err != nil {
		panic(err)
	}

	return b
}

// Width returns the common line width, 0 for an empty block.
func (b Block) Width() int { return b.width }

// Height returns the number of lines.
func (b Block) Height() int { return len(b.lines) }

// Line returns line i; the blank-filler question is the caller's, so i
// must be in range.
func (b Block) Line(i int) string { return b.lines[i] }

// Lines returns a copy of the block's lines, preserving immutability.
func (b Block) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String joins the lines with \n, no trailing newline.
func (b Block) String() string {
	return strings.Join(b.lines, "\n")
}
