// Package shortest picks the right single-pair shortest-path algorithm for a
// graph: breadth-first search when every edge weight is the same, Dijkstra
// otherwise.
package shortest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgraph/bfs"
	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/dijkstra"
)

// Method names the algorithm Find dispatched to.
type Method string

const (
	// MethodBFS is used when all edge weights are equal.
	MethodBFS Method = "bfs"
	// MethodDijkstra is used for graphs with differing weights.
	MethodDijkstra Method = "dijkstra"
)

// ErrGraphNil is returned when a nil graph is passed to Find.
var ErrGraphNil = errors.New("shortest: graph is nil")

// Result is a path with the search tree that produced it.
type Result[K core.Key] struct {
	Path   []K
	Tree   *core.Graph[K]
	Method Method
}

// Find returns a shortest path from start to end.
//
// Errors from the underlying algorithm are wrapped, so errors.Is still
// matches bfs.ErrStartVertexNotFound, dijkstra.ErrVertexNotFound and
// dijkstra.ErrNegativeWeight.
func Find[K core.Key](g *core.Graph[K], start, end K) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	if g.WeightsEqual() {
		path, tree, err := bfs.Path(g, start, end)
		if err != nil {
			return nil, fmt.Errorf("shortest: %w", err)
		}

		return &Result[K]{Path: path, Tree: tree, Method: MethodBFS}, nil
	}

	res, err := dijkstra.Dijkstra(g, start, end)
	if err != nil {
		return nil, fmt.Errorf("shortest: %w", err)
	}

	return &Result[K]{Path: res.Path, Tree: res.Tree, Method: MethodDijkstra}, nil
}
