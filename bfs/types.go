// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrEmptyGraph is returned when no start was given and the graph has no
	// node to default to.
	ErrEmptyGraph = errors.New("bfs: graph has no nodes")

	// ErrStartVertexNotFound is returned when an explicit start key is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Option configures BFS behavior via functional arguments.
type Option[K core.Key] func(*Options[K])

// Options holds parameters and callbacks to customize BFS execution.
type Options[K core.Key] struct {
	// Start is the root of the search. When unset, the first node in the
	// graph's insertion order is used.
	Start    K
	hasStart bool

	// OnVisit is called when a vertex is dequeued and recorded in Order.
	OnVisit func(key K, depth int)
}

// DefaultOptions returns Options with no explicit start and a no-op hook.
func DefaultOptions[K core.Key]() Options[K] {
	return Options[K]{
		OnVisit: func(K, int) {},
	}
}

// WithStart roots the search at key instead of the first node.
func WithStart[K core.Key](key K) Option[K] {
	return func(o *Options[K]) {
		o.Start = key
		o.hasStart = true
	}
}

// WithOnVisit registers a callback to run on every visit.
func WithOnVisit[K core.Key](fn func(key K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in the order they were dequeued. Search empties it when
//     the target is never reached.
//   - Depth: distance (in edges) from the root for every discovered vertex,
//     including those still queued when Search stopped.
//   - Parent: predecessor of every discovered vertex except the root.
//   - Tree: the search tree over every discovered vertex, queued ones
//     included. Each carries the extra core.ExtraDepth and is joined to its
//     parent by a weight-1 edge.
//   - Found: whether Search visited its target. Explore leaves it false.
type Result[K core.Key] struct {
	Root   K
	Order  []K
	Depth  map[K]int
	Parent map[K]K
	Tree   *core.Graph[K]
	Found  bool
}

// PathTo reconstructs the tree path from the root to dest.
// Returns an error if dest was not discovered.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path; Depth bounds the walk
	path := make([]K, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
