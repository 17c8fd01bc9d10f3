// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) with deterministic loop order.
//   - Operates in place on a gonum *mat.Dense; O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgraph/core"
)

// FloydWarshall computes all-pairs shortest paths in-place on d.
//
// Contract:
//   - d must be square (n×n), otherwise ErrNonSquare.
//   - +Inf denotes “no edge” off-diagonal; the diagonal MUST be 0.
//
// Loop order is fixed (k → i → j) and only strict improvements are written.
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(d *mat.Dense) error {
	r, c := d.Dims()
	if r != c {
		return fmt.Errorf("%w: %dx%d", ErrNonSquare, r, c)
	}

	var (
		ik, kj, cand float64
	)
	for k := 0; k < r; k++ { // outer: pick intermediate vertex k
		for i := 0; i < r; i++ { // middle: source vertex i
			ik = d.At(i, k)
			if math.IsInf(ik, 1) { // if i cannot reach k, no path via k can improve i→j
				continue
			}
			for j := 0; j < r; j++ { // inner: destination vertex j
				kj = d.At(k, j)
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < d.At(i, j) {
					d.Set(i, j, cand)
				}
			}
		}
	}

	return nil
}

// AllPairs returns the weighted all-pairs shortest-path matrix of g, with
// rows and columns in ascending key order (the same order as
// NewAdjacencyMatrix). Unreachable pairs hold +Inf and the diagonal is 0.
// Zero-weight edges are traversable. An empty graph yields no keys and a nil
// matrix.
//
// Returns ErrNegativeWeight if any edge weight is negative: in an undirected
// graph every such edge is a negative cycle.
func AllPairs[K core.Key](g *core.Graph[K]) ([]K, *mat.Dense, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.WeightsNonNegative() {
		return nil, nil, ErrNegativeWeight
	}

	keys := g.Keys()
	slices.Sort(keys)
	n := len(keys)
	if n == 0 {
		return keys, nil, nil
	}
	idx := make(map[K]int, n)
	for i, k := range keys {
		idx[k] = i
	}

	// diag = 0; everything else +Inf until an edge says otherwise
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				d.Set(i, j, math.Inf(1))
			}
		}
	}
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		if i == j {
			continue
		}
		d.Set(i, j, e.Weight)
		d.Set(j, i, e.Weight)
	}
	if err := FloydWarshall(d); err != nil {
		return nil, nil, err
	}

	return keys, d, nil
}
