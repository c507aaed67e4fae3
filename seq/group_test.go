package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quennel/calgrid/seq"
)

// concat flattens runs back into a single slice for round-trip checks.
func concat[E any, K comparable](runs []seq.Run[E, K]) []E {
	var out []E
	for _, r := range runs {
		out = append(out, r.Items...)
	}

	return out
}

// TestGroupAdjacent_RoundTrip verifies that concatenating the produced
// runs, in order, reproduces the source exactly, and that every run is
// non-empty with a constant key.
func TestGroupAdjacent_RoundTrip(t *testing.T) {
	src := []int{1, 1, 2, 2, 2, 7, 7, 1}
	runs := seq.Collect(seq.GroupAdjacent(seq.FromSlice(src), func(n int) int { return n }))

	assert.Equal(t, src, concat(runs), "runs must concatenate back to the source")
	for _, r := range runs {
		require.NotEmpty(t, r.Items, "runs are never empty")
		for _, e := range r.Items {
			assert.Equal(t, r.Key, e, "key must be constant within a run")
		}
	}
}

// TestGroupAdjacent_AdjacencyOnly verifies that equal keys separated by a
// differing element start a new run — grouping is adjacency-based, never a
// global sort.
func TestGroupAdjacent_AdjacencyOnly(t *testing.T) {
	src := []string{"a", "b", "a", "a"}
	runs := seq.Collect(seq.GroupAdjacent(seq.FromSlice(src), func(s string) string { return s }))

	require.Len(t, runs, 3, `"a","b","a a" must form three runs`)
	assert.Equal(t, "a", runs[0].Key)
	assert.Equal(t, "b", runs[1].Key)
	assert.Equal(t, []string{"a", "a"}, runs[2].Items)
}

// TestGroupAdjacent_NeighborKeysDiffer verifies the invariant that two
// consecutive runs from one grouping pass never share a key.
func TestGroupAdjacent_NeighborKeysDiffer(t *testing.T) {
	src := []int{4, 4, 4, 9, 9, 4, 2, 2, 2, 2}
	runs := seq.Collect(seq.GroupAdjacent(seq.FromSlice(src), func(n int) int { return n }))

	for i := 1; i < len(runs); i++ {
		assert.NotEqual(t, runs[i-1].Key, runs[i].Key,
			"consecutive runs %d and %d must not share a key", i-1, i)
	}
}

// TestGroupAdjacent_Empty verifies that an empty source yields an empty
// sequence of runs, never a single empty run.
func TestGroupAdjacent_Empty(t *testing.T) {
	c := seq.GroupAdjacent(seq.FromSlice[int](nil), func(n int) int { return n })

	_, ok := c.Next()
	assert.False(t, ok, "empty source must yield no runs")
	_, ok = c.Next()
	assert.False(t, ok, "exhausted cursor must stay exhausted")
}

// TestGroupAdjacent_SingleKey verifies that a uniform source collapses to
// exactly one run holding everything.
func TestGroupAdjacent_SingleKey(t *testing.T) {
	src := []int{5, 5, 5, 5}
	runs := seq.Collect(seq.GroupAdjacent(seq.FromSlice(src), func(int) int { return 0 }))

	require.Len(t, runs, 1)
	assert.Equal(t, src, runs[0].Items)
}

// TestGroupAdjacent_CloneIndependence verifies that cloning the run cursor
// gives an independent walk: advancing the clone never moves the original,
// and both see the same remaining runs. This is the replay capability the
// block compositor depends on.
func TestGroupAdjacent_CloneIndependence(t *testing.T) {
	src := []int{1, 1, 2, 3, 3, 3}
	orig := seq.GroupAdjacent(seq.FromSlice(src), func(n int) int { return n })

	// Consume one run, then fork.
	first, ok := orig.Next()
	require.True(t, ok)
	assert.Equal(t, []int{1, 1}, first.Items)

	fork := orig.Clone()
	forkRuns := seq.Collect(fork)
	origRuns := seq.Collect(orig)

	assert.Equal(t, forkRuns, origRuns, "clone and original must see identical remaining runs")
	require.Len(t, origRuns, 2)
	assert.Equal(t, []int{2}, origRuns[0].Items)
	assert.Equal(t, []int{3, 3, 3}, origRuns[1].Items)
}

// TestGroupAdjacent_NilKeyPanics verifies that a nil key function is
// rejected at construction, before any element is consumed.
func TestGroupAdjacent_NilKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		seq.GroupAdjacent[int, int](seq.FromSlice([]int{1}), nil)
	})
}
