// File: types.go
// Role: Graph, Node, Edge and option types.
//
// Graph is a weighted, undirected, insertion-ordered container. Nodes live in
// an arena of slots addressed by integer index; each node keeps its neighbors
// as slot index → weight plus the order in which neighbors were registered.
// Edges are never stored on their own, they are derived from node adjacency.
//
// The Graph performs no locking: callers must not mutate a Graph while another
// goroutine reads it.

package core

// DefaultWeight is the weight given to an edge added without WithWeight.
const DefaultWeight = 1.0

// ExtraDepth is the Extras key under which search algorithms record the depth
// of a node inside a search tree.
const ExtraDepth = "depth"

// Key is the set of types usable as node identifiers.
// All of them are comparable and ordered, which keeps matrix sorting,
// canonical edge ordering and union-find well defined.
type Key interface {
	~string | ~int | ~int64
}

// Node is a vertex of a Graph.
//
// Extras holds string annotations written by algorithms (e.g. ExtraDepth).
// Meta is reserved for presentation code (positions, colors); the engine
// never reads or writes it.
type Node[K Key] struct {
	key  K
	slot int
	g    *Graph[K]

	// adj lists neighbor slots in registration order; weights holds the
	// edge weight for every slot in adj.
	adj     []int
	weights map[int]float64

	Extras map[string]string
	Meta   map[string]interface{}
}

// Edge is a derived, undirected view of one adjacency pair.
// From <= To holds for every Edge returned by Graph.Edges.
type Edge[K Key] struct {
	From   K
	To     K
	Weight float64
}

// Graph is an insertion-ordered mapping from key to Node.
type Graph[K Key] struct {
	// slots is the node arena. Removed nodes leave a nil slot behind so that
	// slot indices held in neighbor mappings stay valid.
	slots []*Node[K]
	index map[K]int
	count int
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight float64
}

// WithWeight sets the weight of the edge being added.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// NewGraph creates an empty Graph.
func NewGraph[K Key]() *Graph[K] {
	return &Graph[K]{
		index: make(map[K]int),
	}
}
