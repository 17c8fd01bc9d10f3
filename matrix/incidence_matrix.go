// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

// IncidenceMatrix represents a graph as a V×E matrix mapping vertices to edges.
// Keys holds the row order (the graph's store order), Edges the column order
// (the graph's canonical edge order). Data[i][j] is 1 when Keys[i] is an
// endpoint of Edges[j], and 0 otherwise; a self-loop column has a single 1.
type IncidenceMatrix[K core.Key] struct {
	Keys  []K
	Edges []core.Edge[K]
	Data  [][]int
	index map[K]int
}

// NewIncidenceMatrix builds an IncidenceMatrix from g.
// Time: O(V+E); Memory: O(V·E).
func NewIncidenceMatrix[K core.Key](g *core.Graph[K]) (*IncidenceMatrix[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	keys := g.Keys()
	edges := g.Edges()
	idx := make(map[K]int, len(keys))
	for i, k := range keys {
		idx[k] = i
	}
	data := make([][]int, len(keys))
	for i := range data {
		data[i] = make([]int, len(edges))
	}
	for j, e := range edges {
		data[idx[e.From]][j] = 1
		data[idx[e.To]][j] = 1
	}

	return &IncidenceMatrix[K]{Keys: keys, Edges: edges, Data: data, index: idx}, nil
}

// VertexCount returns the number of vertices (rows).
func (m *IncidenceMatrix[K]) VertexCount() int {
	return len(m.Keys)
}

// EdgeCount returns the number of edges (columns).
func (m *IncidenceMatrix[K]) EdgeCount() int {
	return len(m.Edges)
}

// VertexIncidence returns a copy of the incidence row for key.
// Returns ErrUnknownVertex if the key is not indexed.
func (m *IncidenceMatrix[K]) VertexIncidence(key K) ([]int, error) {
	i, ok := m.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, key)
	}
	row := make([]int, len(m.Data[i]))
	copy(row, m.Data[i])

	return row, nil
}

// EdgeEndpoints returns the endpoints of the edge at column j.
// Returns ErrOutOfRange if j is out of range.
func (m *IncidenceMatrix[K]) EdgeEndpoints(j int) (from, to K, err error) {
	if j < 0 || j >= len(m.Edges) {
		return from, to, fmt.Errorf("%w: column %d of %d", ErrOutOfRange, j, len(m.Edges))
	}
	e := m.Edges[j]

	return e.From, e.To, nil
}
