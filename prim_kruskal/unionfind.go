package prim_kruskal

import "github.com/katalvlaran/lvgraph/core"

// disjointSet is a union-find over node keys with path compression
// and union by rank.
type disjointSet[K core.Key] struct {
	parent map[K]K
	rank   map[K]int
}

// newDisjointSet puts every key in its own singleton set.
func newDisjointSet[K core.Key](keys []K) *disjointSet[K] {
	ds := &disjointSet[K]{
		parent: make(map[K]K, len(keys)),
		rank:   make(map[K]int, len(keys)),
	}
	for _, k := range keys {
		ds.parent[k] = k
	}

	return ds
}

// find returns the root of u's set. Iterative, with path halving.
func (ds *disjointSet[K]) find(u K) K {
	// Walk up until the root (parent[u] == u).
	for ds.parent[u] != u {
		// Path compression: make u point to its grandparent.
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v. Reports false if they were already joined.
func (ds *disjointSet[K]) union(u, v K) bool {
	rootU, rootV := ds.find(u), ds.find(v)
	if rootU == rootV {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case ds.rank[rootU] < ds.rank[rootV]:
		ds.parent[rootU] = rootV
	case ds.rank[rootU] > ds.rank[rootV]:
		ds.parent[rootV] = rootU
	default:
		ds.parent[rootV] = rootU
		ds.rank[rootU]++
	}

	return true
}
