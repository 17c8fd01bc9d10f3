// Package dfs defines types and options for depth-first search traversal:
// root selection, a pre-order visit hook, and the traversal result.
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvgraph/core"
)

// Vertex colors used by cycle detection.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Search,
	// Explore or DetectCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrEmptyGraph is returned when no start was given and the graph has no
	// node to default to.
	ErrEmptyGraph = errors.New("dfs: graph has no nodes")

	// ErrStartVertexNotFound indicates that the specified start key
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option[K core.Key] func(*Options[K])

// Options holds configurable parameters for DFS traversal.
type Options[K core.Key] struct {
	// Start is the traversal root; the first node in store order when unset.
	Start    K
	hasStart bool

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	OnVisit func(key K, depth int)
}

// DefaultOptions returns Options rooted at the first node with no hook.
func DefaultOptions[K core.Key]() Options[K] {
	return Options[K]{}
}

// WithStart sets the traversal root.
func WithStart[K core.Key](key K) Option[K] {
	return func(o *Options[K]) {
		o.Start = key
		o.hasStart = true
	}
}

// WithOnVisit sets a pre-order hook.
func WithOnVisit[K core.Key](fn func(key K, depth int)) Option[K] {
	return func(o *Options[K]) {
		o.OnVisit = fn
	}
}

// Result holds the output of a DFS traversal:
//   - Order: vertices in pre-order. Search empties it if the target is never visited.
//   - Depth: tree depth of every visited vertex (root = 0).
//   - Parent: discoverer of every visited vertex except the root.
//   - Tree: the DFS tree, with extra core.ExtraDepth on every vertex and
//     weight-1 edges to each discoverer.
//   - Found: whether Search reached its target.
type Result[K core.Key] struct {
	Root   K
	Order  []K
	Depth  map[K]int
	Parent map[K]K
	Tree   *core.Graph[K]
	Found  bool
}
