// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvgraph/core"
)

// Kruskal computes a minimum spanning forest of graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Pre-add every node (store order) to the result, so isolated nodes survive.
//  3. Collect all edges via graph.Edges().
//  4. Sort edges by ascending Weight (sort.SliceStable keeps Edges() order for equal weights).
//  5. Loop over sorted edges: for each edge (u,v) joining two different sets,
//     union them and add the edge to the result. Self-loops never qualify.
//
// A disconnected input yields a forest with |V| - k edges for k components.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal[K core.Key](graph *core.Graph[K]) (*core.Graph[K], error) {
	// 1. Validate that graph is non-nil.
	if graph == nil {
		return nil, ErrGraphNil
	}

	// 2. Every node, no edges.
	mst := graph.CloneEmpty()

	// 3-4. Collect and stably sort edges by weight.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 5. Build the forest; stop early once |V|-1 edges are in.
	ds := newDisjointSet(graph.Keys())
	need, added := graph.Order()-1, 0
	for _, e := range edges {
		if added >= need {
			break
		}
		if ds.union(e.From, e.To) {
			mst.AddEdge(e.From, e.To, core.WithWeight(e.Weight))
			added++
		}
	}

	return mst, nil
}
