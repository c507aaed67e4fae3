package seq

// Run is one maximal group of adjacent elements sharing a key.
//
// Invariants: Items is non-empty, key(e) == Key for every element, and two
// consecutive runs produced by the same GroupAdjacent pass never share a
// key. Runs partition the source: concatenating Items over all runs, in
// order, reproduces the source sequence exactly.
type Run[E any, K comparable] struct {
	// Key is the derived value shared by every element of the run.
	Key K

	// Items holds the run's elements in source order. Never empty.
	Items []E
}

// runCursor produces runs lazily, holding at most one element of lookahead:
// the element that terminated the previous run and opens the next one.
type runCursor[E any, K comparable] struct {
	src        Cursor[E]
	key        func(E) K
	pending    E
	hasPending bool
}

// GroupAdjacent splits src into maximal runs of adjacent elements with
// equal keys. Only adjacency counts: elements with equal keys separated by
// a differing element land in separate runs. An empty source yields an
// empty sequence of runs, never a single empty run.
//
// The returned cursor is lazy (one run materialized per Next) and
// cloneable: Clone copies the lookahead and clones the source cursor, so a
// clone replays from the current run boundary without re-consuming src.
//
// Panics if key is nil (programmer error surfaced at construction).
// Complexity: O(1) amortized per source element; O(len(run)) memory per run.
func GroupAdjacent[E any, K comparable](src Cursor[E], key func(E) K) Cursor[Run[E, K]] {
	if key == nil {
		panic("seq: GroupAdjacent(nil key)")
	}

	return &runCursor[E, K]{src: src, key: key}
}

// Next materializes the next run: the buffered lookahead (if any) plus
// every following element with the same key. The first element with a
// differing key becomes the new lookahead.
func (c *runCursor[E, K]) Next() (Run[E, K], bool) {
	if !c.hasPending {
		e, ok := c.src.Next()
		if !ok {
			return Run[E, K]{}, false
		}
		c.pending, c.hasPending = e, true
	}

	k := c.key(c.pending)
	items := []E{c.pending}
	c.hasPending = false

	for {
		e, ok := c.src.Next()
		if !ok {
			break
		}
		if c.key(e) != k {
			// This element opens the next run; park it as lookahead.
			c.pending, c.hasPending = e, true
			break
		}
		items = append(items, e)
	}

	return Run[E, K]{Key: k, Items: items}, true
}

// Clone copies the grouping cursor, lookahead included, and clones the
// underlying source so the two cursors advance independently.
func (c *runCursor[E, K]) Clone() Cursor[Run[E, K]] {
	cp := *c
	cp.src = c.src.Clone()

	return &cp
}
