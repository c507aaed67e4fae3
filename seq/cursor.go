// Package seq defines the Cursor abstraction shared by every pipeline stage.
package seq

// Cursor is a single-pass forward iterator over a sequence of E.
//
// Next returns the next element and true, or the zero E and false once the
// sequence is exhausted. After the first false, Next keeps returning false.
//
// Clone returns an independent cursor positioned at the same point; the
// original is untouched and the two may be advanced separately. Clone is
// the replay capability the block compositor relies on for width
// pre-scanning, and must be cheap (structural copy, no re-consumption).
type Cursor[E any] interface {
	Next() (E, bool)
	Clone() Cursor[E]
}

// sliceCursor walks a shared backing slice by index.
// Cloning copies the index only, so clones cost O(1).
type sliceCursor[E any] struct {
	items []E
	pos   int
}

// FromSlice returns a replayable Cursor over items.
// The slice is not copied; callers must not mutate it while iterating.
// Complexity: O(1) construction, O(1) per Next, O(1) Clone.
func FromSlice[E any](items []E) Cursor[E] {
	return &sliceCursor[E]{items: items}
}

// Next returns the element at the current position and advances.
func (c *sliceCursor[E]) Next() (E, bool) {
	if c.pos >= len(c.items) {
		var zero E
		return zero, false
	}
	e := c.items[c.pos]
	c.pos++

	return e, true
}

// Clone returns an independent cursor at the same position.
func (c *sliceCursor[E]) Clone() Cursor[E] {
	cp := *c

	return &cp
}

// Collect drains c into a freshly allocated slice, preserving order.
// Complexity: O(n) time and memory for n remaining elements.
func Collect[E any](c Cursor[E]) []E {
	var out []E
	for e, ok := c.Next(); ok; e, ok = c.Next() {
		out = append(out, e)
	}

	return out
}
