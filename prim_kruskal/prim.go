// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from the first node by rescanning the whole frontier every round.
package prim_kruskal

import (
	"github.com/katalvlaran/lvgraph/core"
)

// Prim computes a minimum spanning tree of the component containing the
// first node of graph. Every other node is still present in the result,
// isolated when unreachable.
//
// Steps:
//  1. Validate: graph != nil. An empty graph yields an empty graph.
//  2. Pre-add every node (store order) to the result.
//  3. Mark the first node visited.
//  4. Each round, scan every edge from every visited node (in visit order,
//     neighbors in insertion order) to an unvisited neighbor and keep the
//     strictly smallest; the first one found wins ties.
//  5. Add that edge, mark its far endpoint visited, and repeat until every
//     node is visited or no crossing edge remains.
//
// Complexity: O(V² · avg-degree) time, O(V) memory.
func Prim[K core.Key](graph *core.Graph[K]) (*core.Graph[K], error) {
	// 1. Validate that graph is non-nil.
	if graph == nil {
		return nil, ErrGraphNil
	}

	// 2. Every node, no edges.
	mst := graph.CloneEmpty()
	first, ok := graph.First()
	if !ok {
		return mst, nil
	}

	// 3. Seed the visited set.
	n := graph.Order()
	visited := make(map[K]bool, n)
	order := make([]*core.Node[K], 0, n)
	visited[first.Key()] = true
	order = append(order, first)

	// 4-5. Grow one edge per round.
	for len(order) < n {
		var (
			from, to *core.Node[K]
			best     float64
		)
		for _, u := range order {
			for _, v := range u.Neighbors() {
				if visited[v] {
					continue
				}
				w, _ := u.Weight(v)
				if to == nil || w < best {
					nv, _ := graph.Node(v)
					from, to, best = u, nv, w
				}
			}
		}
		// no crossing edge: the rest of the graph is unreachable
		if to == nil {
			break
		}
		mst.AddEdge(from.Key(), to.Key(), core.WithWeight(best))
		visited[to.Key()] = true
		order = append(order, to)
	}

	return mst, nil
}
