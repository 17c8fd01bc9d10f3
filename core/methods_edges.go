// File: methods_edges.go
// Role: derived edge view and whole-graph weight queries.
// Determinism:
//   - Edges() walks nodes in insertion order and each node's neighbors in
//     registration order, emitting a pair only from its smaller endpoint.

package core

// Edges returns every edge exactly once, with From <= To.
// Complexity: O(V + E).
func (g *Graph[K]) Edges() []Edge[K] {
	out := make([]Edge[K], 0)
	for _, n := range g.slots {
		if n == nil {
			continue
		}
		for _, s := range n.adj {
			nb := g.slots[s]
			if nb.key < n.key {
				continue // emitted from the other endpoint
			}
			out = append(out, Edge[K]{From: n.key, To: nb.key, Weight: n.weights[s]})
		}
	}

	return out
}

// Size returns the number of distinct edges.
func (g *Graph[K]) Size() int {
	return len(g.Edges())
}

// WeightsEqual reports whether every edge weight equals the first edge's
// weight. It is vacuously true for graphs with at most one edge.
func (g *Graph[K]) WeightsEqual() bool {
	edges := g.Edges()
	for _, e := range edges {
		if e.Weight != edges[0].Weight {
			return false
		}
	}

	return true
}

// WeightsNonNegative reports whether no edge carries a negative weight.
func (g *Graph[K]) WeightsNonNegative() bool {
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return false
		}
	}

	return true
}

// TotalWeight sums the weights of all edges.
func (g *Graph[K]) TotalWeight() float64 {
	var total float64
	for _, e := range g.Edges() {
		total += e.Weight
	}

	return total
}
