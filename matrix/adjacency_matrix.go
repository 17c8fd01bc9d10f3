// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgraph/core"
)

// AdjacencyMatrix holds a fixed-size, 2D representation of a graph.
//
// Description:
//
//	Keys lists the graph's nodes in ascending key order and fixes the row and
//	column order. Data[i][j] holds the weight of the edge between Keys[i] and
//	Keys[j], or zero if they are not adjacent. The matrix is symmetric by
//	construction; a self-loop sits on the diagonal.
//
// Algorithm AdjacencyMatrix construction:
//  1. Sort the keys ascending and build the key → index map.
//  2. Allocate Data as an N×N zero-filled slice.
//  3. For every canonical edge set Data[i][j] and Data[j][i].
//
// Memory: O(V²).
type AdjacencyMatrix[K core.Key] struct {
	// Keys maps row/column index → node key.
	Keys []K
	// Data[i][j] holds the weight of edge i–j, or zero if none.
	Data  [][]float64
	index map[K]int
}

// NewAdjacencyMatrix builds an AdjacencyMatrix from g. The graph is not modified.
//
// Time Complexity: O(V log V + V² + E)
func NewAdjacencyMatrix[K core.Key](g *core.Graph[K]) (*AdjacencyMatrix[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	keys := g.Keys()
	slices.Sort(keys)
	n := len(keys)
	idx := make(map[K]int, n)
	for i, k := range keys {
		idx[k] = i
	}

	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		data[i][j] = e.Weight
		data[j][i] = e.Weight
	}

	return &AdjacencyMatrix[K]{Keys: keys, Data: data, index: idx}, nil
}

// Len returns the matrix order (number of nodes).
func (m *AdjacencyMatrix[K]) Len() int {
	return len(m.Keys)
}

// Index returns the row/column of key.
func (m *AdjacencyMatrix[K]) Index(key K) (int, bool) {
	i, ok := m.index[key]
	return i, ok
}

// At returns Data[i][j]. Returns ErrOutOfRange for bad indices.
func (m *AdjacencyMatrix[K]) At(i, j int) (float64, error) {
	n := len(m.Keys)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, n, n)
	}

	return m.Data[i][j], nil
}

// Weight returns the cell for a pair of keys.
// Returns ErrUnknownVertex if either key is not indexed.
func (m *AdjacencyMatrix[K]) Weight(a, b K) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownVertex, a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownVertex, b)
	}

	return m.Data[i][j], nil
}

// IsSymmetric reports whether Data[i][j] == Data[j][i] for all i, j.
func (m *AdjacencyMatrix[K]) IsSymmetric() bool {
	for i := range m.Data {
		for j := i + 1; j < len(m.Data); j++ {
			if m.Data[i][j] != m.Data[j][i] {
				return false
			}
		}
	}

	return true
}

// SymDense copies the matrix into a gonum symmetric dense matrix.
// An empty graph yields nil, since gonum has no 0×0 matrices.
func (m *AdjacencyMatrix[K]) SymDense() *mat.SymDense {
	n := len(m.Keys)
	if n == 0 {
		return nil
	}
	flat := make([]float64, 0, n*n)
	for _, row := range m.Data {
		flat = append(flat, row...)
	}

	return mat.NewSymDense(n, flat)
}

// String renders the matrix with a key header line followed by the rows,
// formatted by gonum's mat.Formatted.
func (m *AdjacencyMatrix[K]) String() string {
	if len(m.Keys) == 0 {
		return "[]"
	}
	names := make([]string, len(m.Keys))
	for i, k := range m.Keys {
		names[i] = fmt.Sprint(k)
	}

	return fmt.Sprintf("keys: [%s]\n%v", strings.Join(names, " "), mat.Formatted(m.SymDense(), mat.Squeeze()))
}
