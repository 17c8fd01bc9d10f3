// Package core: node and edge lifecycle methods.
//
// Every mutator here keeps adjacency symmetric: an edge is written to, or
// removed from, both endpoints inside the same call. Lookups of absent keys
// are silent no-ops rather than errors.

package core

// AddNode inserts a node for key if absent and returns it.
// If the key already exists the existing node is returned untouched.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddNode(key K) *Node[K] {
	if slot, ok := g.index[key]; ok {
		return g.slots[slot] // idempotent: keep existing neighbors
	}
	n := &Node[K]{
		key:     key,
		slot:    len(g.slots),
		g:       g,
		weights: make(map[int]float64),
		Extras:  make(map[string]string),
		Meta:    make(map[string]interface{}),
	}
	g.slots = append(g.slots, n)
	g.index[key] = n.slot
	g.count++

	return n
}

// AddEdge connects a and b with the configured weight (DefaultWeight unless
// WithWeight is given). Both endpoints must already exist; otherwise the call
// is a no-op. Adding an existing edge overwrites its weight on both sides and
// keeps the neighbor's original position.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(a, b K, opts ...EdgeOption) {
	cfg := edgeConfig{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	na, okA := g.Node(a)
	nb, okB := g.Node(b)
	if !okA || !okB {
		return // never auto-create endpoints
	}
	na.link(nb.slot, cfg.weight)
	nb.link(na.slot, cfg.weight)
}

// RemoveNode deletes key and drops it from every neighbor mapping.
// Absent keys are ignored.
// Complexity: O(deg(v)) for the neighbor cleanup plus O(1) for the slot.
func (g *Graph[K]) RemoveNode(key K) {
	n, ok := g.Node(key)
	if !ok {
		return
	}
	for _, s := range n.adj {
		if other := g.slots[s]; other != nil && other != n {
			other.unlink(n.slot)
		}
	}
	g.slots[n.slot] = nil
	delete(g.index, key)
	g.count--
	n.g = nil
}

// RemoveEdge disconnects a and b. Absent keys or a missing edge are ignored.
func (g *Graph[K]) RemoveEdge(a, b K) {
	na, okA := g.Node(a)
	nb, okB := g.Node(b)
	if !okA || !okB {
		return
	}
	na.unlink(nb.slot)
	nb.unlink(na.slot)
}

// Node returns the node stored under key.
func (g *Graph[K]) Node(key K) (*Node[K], bool) {
	slot, ok := g.index[key]
	if !ok {
		return nil, false
	}

	return g.slots[slot], true
}

// HasNode reports whether key is present.
func (g *Graph[K]) HasNode(key K) bool {
	_, ok := g.index[key]
	return ok
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph[K]) HasEdge(a, b K) bool {
	na, okA := g.Node(a)
	nb, okB := g.Node(b)
	if !okA || !okB {
		return false
	}
	_, ok := na.weights[nb.slot]

	return ok
}

// Nodes returns every node in insertion order.
// Complexity: O(slots).
func (g *Graph[K]) Nodes() []*Node[K] {
	out := make([]*Node[K], 0, g.count)
	for _, n := range g.slots {
		if n != nil {
			out = append(out, n)
		}
	}

	return out
}

// Keys returns every key in insertion order.
func (g *Graph[K]) Keys() []K {
	out := make([]K, 0, g.count)
	for _, n := range g.slots {
		if n != nil {
			out = append(out, n.key)
		}
	}

	return out
}

// First returns the first node in insertion order, or false on an empty graph.
func (g *Graph[K]) First() (*Node[K], bool) {
	for _, n := range g.slots {
		if n != nil {
			return n, true
		}
	}

	return nil, false
}

// Neighbors returns the neighbor keys of key in registration order,
// or an empty slice if key is absent.
func (g *Graph[K]) Neighbors(key K) []K {
	n, ok := g.Node(key)
	if !ok {
		return []K{}
	}

	return n.Neighbors()
}

// Weight returns the weight of the edge a–b, or 0 if they are not adjacent.
func (g *Graph[K]) Weight(a, b K) float64 {
	na, okA := g.Node(a)
	nb, okB := g.Node(b)
	if !okA || !okB {
		return 0
	}

	return na.weights[nb.slot]
}

// Order returns the number of nodes.
func (g *Graph[K]) Order() int {
	return g.count
}

// Key returns the node's identifier.
func (n *Node[K]) Key() K {
	return n.key
}

// Neighbors returns the neighbor keys in registration order.
func (n *Node[K]) Neighbors() []K {
	out := make([]K, 0, len(n.adj))
	for _, s := range n.adj {
		out = append(out, n.g.slots[s].key)
	}

	return out
}

// Weight returns the weight of the edge to key and whether it exists.
func (n *Node[K]) Weight(key K) (float64, bool) {
	slot, ok := n.g.index[key]
	if !ok {
		return 0, false
	}
	w, ok := n.weights[slot]

	return w, ok
}

// Degree returns the number of neighbors. A self-loop counts once.
func (n *Node[K]) Degree() int {
	return len(n.adj)
}

// SetExtra records an algorithm annotation on the node.
func (n *Node[K]) SetExtra(name, value string) {
	n.Extras[name] = value
}

// Extra returns the annotation stored under name.
func (n *Node[K]) Extra(name string) (string, bool) {
	v, ok := n.Extras[name]
	return v, ok
}

// link registers slot as a neighbor, appending it only on first sight.
func (n *Node[K]) link(slot int, w float64) {
	if _, ok := n.weights[slot]; !ok {
		n.adj = append(n.adj, slot)
	}
	n.weights[slot] = w
}

// unlink removes slot from the neighbor mapping, preserving the order of the rest.
func (n *Node[K]) unlink(slot int) {
	if _, ok := n.weights[slot]; !ok {
		return
	}
	delete(n.weights, slot)
	for i, s := range n.adj {
		if s == slot {
			n.adj = append(n.adj[:i], n.adj[i+1:]...)
			break
		}
	}
}
