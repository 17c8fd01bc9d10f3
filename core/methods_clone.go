// File: methods_clone.go
// Role: copying graph instances.
// Determinism:
//   - Clones keep the insertion order of the source graph.

package core

// CloneEmpty returns a new Graph with the same keys in the same order and no
// edges. Extras and Meta are not carried over.
//
// Complexity: O(V).
func (g *Graph[K]) CloneEmpty() *Graph[K] {
	clone := NewGraph[K]()
	for _, n := range g.slots {
		if n != nil {
			clone.AddNode(n.key)
		}
	}

	return clone
}

// Clone returns a deep copy of the Graph: keys, edges and weights, with
// neighbors registered in the same order as in g.
//
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	clone := g.CloneEmpty()
	for _, n := range g.slots {
		if n == nil {
			continue
		}
		cn, _ := clone.Node(n.key)
		for _, s := range n.adj {
			nb, _ := clone.Node(g.slots[s].key)
			cn.link(nb.slot, n.weights[s])
		}
		for k, v := range n.Extras {
			cn.Extras[k] = v
		}
	}

	return clone
}
