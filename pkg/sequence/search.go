package sequence

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds is returned by Bounds.Validate.
var ErrInvalidBounds = errors.New("invalid search bounds")

// Bounds limits the body search. Partial sums outside [MinSum, MaxSum] are
// never enqueued, and paths longer than MaxDepth are not expanded, so a body
// has at most MaxDepth+1 elements. Targets that need an excursion outside the
// window, or more elements than that, are reported as not found.
type Bounds struct {
	MinSum   int `json:"min_sum"`
	MaxSum   int `json:"max_sum"`
	MaxDepth int `json:"max_depth"`
}

// DefaultBounds returns the window and depth used when nothing else is configured.
func DefaultBounds() Bounds {
	return Bounds{MinSum: -300, MaxSum: 400, MaxDepth: 50}
}

// Validate checks that the window contains the starting sum 0 and that the
// depth is not negative.
func (b Bounds) Validate() error {
	if b.MinSum > 0 || b.MaxSum < 0 {
		return fmt.Errorf("%w: window [%d, %d] must contain 0", ErrInvalidBounds, b.MinSum, b.MaxSum)
	}
	if b.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must be >= 0, got %d", ErrInvalidBounds, b.MaxDepth)
	}
	return nil
}

// Admits reports whether sum lies inside the window.
func (b Bounds) Admits(sum int) bool {
	return sum >= b.MinSum && sum <= b.MaxSum
}

// Width is the number of distinct sums inside the window.
func (b Bounds) Width() int {
	return b.MaxSum - b.MinSum + 1
}

// SearchStats describes the work done by one body search.
type SearchStats struct {
	Visited  int // distinct partial sums ever enqueued, including the start
	Expanded int // frontier nodes whose successors were generated
}

// ShortestBody returns a shortest sequence of alphabet values summing to
// target, or false when none exists within b.
func ShortestBody(a *Alphabet, b Bounds, target int) ([]int, bool) {
	body, ok, _ := searchBody(a.values, b, target)
	return body, ok
}

type frontierNode struct {
	sum   int
	depth int
}

// parentEdge records how a visited sum was first reached.
type parentEdge struct {
	prev  int
	value int
}

// searchBody is a breadth-first search over partial sums. Each sum is enqueued
// at most once, the first time it is reached, which is along a shortest path.
// The target test runs before the window test, so a target one step beyond the
// window is still found.
func searchBody(values []int, b Bounds, target int) ([]int, bool, SearchStats) {
	var stats SearchStats
	if target == 0 {
		return []int{}, true, stats
	}

	parents := map[int]parentEdge{0: {}}
	queue := []frontierNode{{sum: 0}}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.depth > b.MaxDepth {
			continue
		}
		stats.Expanded++

		for _, v := range values {
			next := cur.sum + v
			if next == target {
				stats.Visited = len(parents)
				return tracePath(parents, cur, v), true, stats
			}
			if _, seen := parents[next]; seen || !b.Admits(next) {
				continue
			}
			parents[next] = parentEdge{prev: cur.sum, value: v}
			queue = append(queue, frontierNode{sum: next, depth: cur.depth + 1})
		}
	}

	stats.Visited = len(parents)
	return nil, false, stats
}

// tracePath rebuilds the path to end from the parent links and appends last.
func tracePath(parents map[int]parentEdge, end frontierNode, last int) []int {
	path := make([]int, end.depth+1)
	path[end.depth] = last

	sum := end.sum
	for i := end.depth - 1; i >= 0; i-- {
		edge := parents[sum]
		path[i] = edge.value
		sum = edge.prev
	}
	return path
}
