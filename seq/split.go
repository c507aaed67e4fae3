package seq

// splitCursor chunks its source on a boundary predicate, one chunk per Next.
type splitCursor[E any] struct {
	src      Cursor[E]
	boundary func(E) bool
}

// SplitAfter splits src into non-empty chunks, each ending immediately
// after an element for which boundary returns true, or when the source is
// exhausted. Unlike GroupAdjacent, no key is involved: the boundary is a
// property of the element itself (e.g. "this date is a Saturday"), which is
// what makes week grouping well-defined across month and year boundaries.
//
// Concatenating all chunks reproduces the source; an empty source yields an
// empty sequence of chunks. The cursor is lazy and cloneable.
//
// Panics if boundary is nil.
// Complexity: O(1) amortized per source element; O(len(chunk)) memory per chunk.
func SplitAfter[E any](src Cursor[E], boundary func(E) bool) Cursor[[]E] {
	if boundary == nil {
		panic("seq: SplitAfter(nil boundary)")
	}

	return &splitCursor[E]{src: src, boundary: boundary}
}

// Next accumulates elements until one satisfies the boundary (inclusive)
// or the source ends. No lookahead is needed: the terminator belongs to
// the chunk it closes.
func (c *splitCursor[E]) Next() ([]E, bool) {
	var chunk []E
	for {
		e, ok := c.src.Next()
		if !ok {
			break
		}
		chunk = append(chunk, e)
		if c.boundary(e) {
			break
		}
	}
	if len(chunk) == 0 {
		return nil, false
	}

	return chunk, true
}

// Clone copies the splitter with an independent source cursor.
func (c *splitCursor[E]) Clone() Cursor[[]E] {
	cp := *c
	cp.src = c.src.Clone()

	return &cp
}

// chunkCursor groups its source into fixed-size chunks.
type chunkCursor[E any] struct {
	src Cursor[E]
	n   int
}

// Chunk splits src into consecutive chunks of exactly n elements; the final
// chunk may be shorter. An empty source yields an empty sequence.
//
// Panics if n < 1 (a chunk size below one is meaningless).
// Complexity: O(1) amortized per source element; O(n) memory per chunk.
func Chunk[E any](src Cursor[E], n int) Cursor[[]E] {
	if n < 1 {
		panic("seq: Chunk size must be >= 1")
	}

	return &chunkCursor[E]{src: src, n: n}
}

// Next collects up to n elements from the source.
func (c *chunkCursor[E]) Next() ([]E, bool) {
	var chunk []E
	for len(chunk) < c.n {
		e, ok := c.src.Next()
		if !ok {
			break
		}
		chunk = append(chunk, e)
	}
	if len(chunk) == 0 {
		return nil, false
	}

	return chunk, true
}

// Clone copies the chunker with an independent source cursor.
func (c *chunkCursor[E]) Clone() Cursor[[]E] {
	cp := *c
	cp.src = c.src.Clone()

	return &cp
}
