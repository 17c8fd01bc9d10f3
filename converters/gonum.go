package converters

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvgraph/core"
)

// GonumGraph is a gonum view of a core.Graph. Node IDs are assigned in the
// source graph's store order starting at 0. Self-loops are dropped, since
// simple graphs cannot hold them.
type GonumGraph[K core.Key] struct {
	*simple.WeightedUndirectedGraph
	ids  map[K]int64
	keys []K
}

// ToGonum copies g into a gonum weighted undirected graph. Absent edges
// report weight +Inf and a node's weight to itself is 0.
func ToGonum[K core.Key](g *core.Graph[K]) *GonumGraph[K] {
	gg := &GonumGraph[K]{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		ids:                     make(map[K]int64, g.Order()),
		keys:                    make([]K, 0, g.Order()),
	}
	for _, n := range g.Nodes() {
		id := int64(len(gg.keys))
		gg.ids[n.Key()] = id
		gg.keys = append(gg.keys, n.Key())
		gg.AddNode(newNode(id, n))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		gg.SetWeightedEdge(weightedEdge{
			F: gg.Node(gg.ids[e.From]),
			T: gg.Node(gg.ids[e.To]),
			W: e.Weight,
		})
	}

	return gg
}

// ID returns the gonum node ID of key.
func (gg *GonumGraph[K]) ID(key K) (int64, bool) {
	id, ok := gg.ids[key]
	return id, ok
}

// Key returns the core key of a gonum node ID.
func (gg *GonumGraph[K]) Key(id int64) (K, bool) {
	if id < 0 || id >= int64(len(gg.keys)) {
		var zero K
		return zero, false
	}

	return gg.keys[id], true
}

// Keys maps gonum nodes back to core keys, in the given order.
func (gg *GonumGraph[K]) Keys(nodes []graph.Node) []K {
	out := make([]K, 0, len(nodes))
	for _, n := range nodes {
		if k, ok := gg.Key(n.ID()); ok {
			out = append(out, k)
		}
	}

	return out
}

// node carries a core key as its DOT identifier and the node's extras as
// DOT attributes.
type node struct {
	id    int64
	dotID string
	attrs []encoding.Attribute
}

func newNode[K core.Key](id int64, n *core.Node[K]) node {
	names := make([]string, 0, len(n.Extras))
	for name := range n.Extras {
		names = append(names, name)
	}
	sort.Strings(names)
	attrs := make([]encoding.Attribute, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, encoding.Attribute{Key: name, Value: n.Extras[name]})
	}

	return node{id: id, dotID: fmt.Sprint(n.Key()), attrs: attrs}
}

func (n node) ID() int64                        { return n.id }
func (n node) DOTID() string                    { return n.dotID }
func (n node) Attributes() []encoding.Attribute { return n.attrs }

// weightedEdge is a gonum weighted edge that exports its weight to DOT.
type weightedEdge struct {
	F, T graph.Node
	W    float64
}

func (e weightedEdge) From() graph.Node { return e.F }
func (e weightedEdge) To() graph.Node   { return e.T }
func (e weightedEdge) Weight() float64  { return e.W }

func (e weightedEdge) ReversedEdge() graph.Edge {
	return weightedEdge{F: e.T, T: e.F, W: e.W}
}

func (e weightedEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: core.FormatNumber(e.W)}}
}
