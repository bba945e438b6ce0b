package sequence

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func TestShortestBody_Zero(t *testing.T) {
	body, ok := ShortestBody(Default(), DefaultBounds(), 0)
	require.True(t, ok)
	assert.NotNil(t, body)
	assert.Empty(t, body)

	// A zero target needs no search, even with a degenerate window.
	body, ok = ShortestBody(Default(), Bounds{}, 0)
	require.True(t, ok)
	assert.Empty(t, body)
}

func TestShortestBody_KnownTargets(t *testing.T) {
	tests := []struct {
		target int
		want   []int
	}{
		{target: 2, want: []int{2}},
		{target: 16, want: []int{16}},
		{target: 1, want: []int{-6, 7}},
		{target: -1, want: []int{-3, 2}},
		{target: 4, want: []int{-3, 7}},
		{target: 9, want: []int{2, 7}},
		{target: 10, want: []int{-3, 13}},
		{target: 5, want: []int{-9, 7, 7}},
		{target: 32, want: []int{16, 16}},
		{target: -20, want: []int{-3, -9, -15, 7}},
		{target: 100, want: []int{7, 13, 16, 16, 16, 16, 16}},
	}

	for _, tt := range tests {
		body, ok := ShortestBody(Default(), DefaultBounds(), tt.target)
		require.True(t, ok, "target %d", tt.target)
		if diff := cmp.Diff(tt.want, body); diff != "" {
			t.Errorf("ShortestBody(%d) mismatch (-want +got):\n%s", tt.target, diff)
		}
	}
}

// TestShortestBody_MatchesLayeredReachability checks BFS lengths against an
// independent layer-by-layer enumeration of reachable sums with no window.
func TestShortestBody_MatchesLayeredReachability(t *testing.T) {
	values := Default().Values()
	const maxLen = 8

	layers := []map[int]bool{{0: true}}
	for k := 1; k <= maxLen; k++ {
		next := make(map[int]bool)
		for s := range layers[k-1] {
			for _, v := range values {
				next[s+v] = true
			}
		}
		layers = append(layers, next)
	}
	minLen := func(target int) int {
		for k, layer := range layers {
			if layer[target] {
				return k
			}
		}
		return -1
	}

	for target := -80; target <= 80; target++ {
		want := minLen(target)
		require.NotEqual(t, -1, want, "target %d should be reachable within %d elements", target, maxLen)

		body, ok := ShortestBody(Default(), DefaultBounds(), target)
		require.True(t, ok, "target %d", target)
		assert.Len(t, body, want, "target %d", target)
		assert.Equal(t, target, sum(body), "target %d", target)
		for _, v := range body {
			assert.True(t, Default().Contains(v))
		}
	}
}

// TestShortestBody_WindowEdges tests the admissible window, including the rule
// that the target is recognised one step beyond the window edge.
func TestShortestBody_WindowEdges(t *testing.T) {
	body, ok := ShortestBody(Default(), DefaultBounds(), 400)
	require.True(t, ok)
	assert.Len(t, body, 25)

	body, ok = ShortestBody(Default(), DefaultBounds(), 416)
	require.True(t, ok, "416 is one step of 16 beyond the window edge")
	assert.Len(t, body, 26)
	assert.Equal(t, 416, sum(body))

	_, ok = ShortestBody(Default(), DefaultBounds(), 417)
	assert.False(t, ok)

	body, ok = ShortestBody(Default(), DefaultBounds(), -300)
	require.True(t, ok)
	assert.Len(t, body, 20)
}

func TestShortestBody_Unreachable(t *testing.T) {
	for _, target := range []int{10000, -10000, 1000} {
		body, ok := ShortestBody(Default(), DefaultBounds(), target)
		assert.False(t, ok, "target %d", target)
		assert.Nil(t, body)
	}

	// Parity: only even sums are reachable with {2}.
	evens := MustAlphabet([]int{2}, nil)
	_, ok := ShortestBody(evens, DefaultBounds(), 7)
	assert.False(t, ok)
}

func TestShortestBody_DepthBound(t *testing.T) {
	evens := MustAlphabet([]int{2}, nil)
	window := Bounds{MinSum: -10, MaxSum: 10}

	tests := []struct {
		name     string
		maxDepth int
		target   int
		want     []int
	}{
		{name: "depth 0 reaches one step", maxDepth: 0, target: 2, want: []int{2}},
		{name: "depth 0 stops at one step", maxDepth: 0, target: 4, want: nil},
		{name: "depth 1 reaches two steps", maxDepth: 1, target: 4, want: []int{2, 2}},
		{name: "depth 1 stops at two steps", maxDepth: 1, target: 6, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := window
			b.MaxDepth = tt.maxDepth

			body, ok := ShortestBody(evens, b, tt.target)
			assert.Equal(t, tt.want != nil, ok)
			assert.Equal(t, tt.want, body)
		})
	}
}

// TestSearchBody_NoSumExpandedTwice tests the visited-set discipline: the
// frontier never exceeds the number of distinct sums in the window.
func TestSearchBody_NoSumExpandedTwice(t *testing.T) {
	b := DefaultBounds()
	for _, target := range []int{417, 10000, -999} {
		_, ok, stats := searchBody(Default().values, b, target)
		require.False(t, ok)

		assert.LessOrEqual(t, stats.Visited, b.Width())
		assert.LessOrEqual(t, stats.Expanded, stats.Visited)
		assert.Greater(t, stats.Expanded, 0)
	}

	_, ok, stats := searchBody(Default().values, b, 16)
	require.True(t, ok)
	assert.Equal(t, 1, stats.Expanded, "a one-step target is found while expanding the start")
}

func TestBounds_Validate(t *testing.T) {
	assert.NoError(t, DefaultBounds().Validate())
	assert.NoError(t, Bounds{}.Validate())

	for _, b := range []Bounds{
		{MinSum: 1, MaxSum: 10, MaxDepth: 5},
		{MinSum: -10, MaxSum: -1, MaxDepth: 5},
		{MinSum: -10, MaxSum: 10, MaxDepth: -1},
	} {
		assert.ErrorIs(t, b.Validate(), ErrInvalidBounds, "%+v", b)
	}
}

func TestBounds_Admits(t *testing.T) {
	b := DefaultBounds()
	assert.True(t, b.Admits(-300))
	assert.True(t, b.Admits(400))
	assert.False(t, b.Admits(-301))
	assert.False(t, b.Admits(401))
	assert.Equal(t, 701, b.Width())
}
