// Package core provides the in-memory graph store used by every algorithm in
// lvgraph: a weighted, undirected, insertion-ordered Graph keyed by strings or
// integers.
//
// The Graph G = (V,E) guarantees:
//
//   - Unique keys. AddNode on an existing key returns the existing node.
//   - Symmetric adjacency. AddEdge/RemoveEdge update both endpoints at once.
//   - Permissive references. AddEdge, RemoveEdge and RemoveNode ignore
//     absent keys; AddEdge never creates nodes.
//   - Default weight 1 (DefaultWeight), overridable with WithWeight.
//   - Deterministic iteration. Nodes(), Keys() and Edges() follow insertion
//     order; a node's Neighbors() follow the order edges were registered.
//   - Canonical edges. Edges() emits each unordered pair once, from the
//     endpoint with the smaller key.
//
// Storage:
//
//	slots[i]           → *Node (nil once removed; slots are never reused)
//	index[key]         → i
//	node.adj           → neighbor slots in registration order
//	node.weights[slot] → edge weight
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(key) *Node          // O(1)
//	RemoveNode(key)             // O(deg(v))
//	Node(key) (*Node, bool)     // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b, opts...)      // O(1)
//	RemoveEdge(a, b)            // O(deg)
//	HasEdge(a, b) bool          // O(1)
//
//	// Queries
//	Nodes(), Keys(), First()    // insertion order
//	Neighbors(key), Weight(a, b)
//	Edges(), Order(), Size()
//
//	// Statistics
//	Degree(key), MeanDegree(), DegreeDistribution(), Degrees()
//	UnconnectedNodes(), WeightsEqual(), WeightsNonNegative(), TotalWeight()
//
//	// Copies and serialization
//	CloneEmpty(), Clone(), Save(), WriteTo(w)
//
// Node annotations:
//
//	Extras map[string]string       – written by algorithms (ExtraDepth = "depth")
//	Meta   map[string]interface{}  – owned by presentation code, never touched here
//
// Degenerate values: MeanDegree() of an empty graph is NaN (0/0). This is the
// contract, not an oversight.
//
// The Graph performs no locking. It is meant to be built once, then read by
// algorithms from a single goroutine.
package core
