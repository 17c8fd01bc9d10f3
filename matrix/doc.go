// SPDX-License-Identifier: MIT

// Package matrix offers matrix-based projections of a core.Graph.
//
// The matrix package provides:
//
//   - AdjacencyMatrix: V×V weights with rows and columns in ascending key
//     order, symmetric by construction, convertible to a gonum *mat.SymDense.
//   - AllPairs: weighted all-pairs shortest paths via an in-place
//     Floyd–Warshall over a gonum *mat.Dense.
//   - IncidenceMatrix: vertex-by-edge incidence for graph-theoretic analyses.
//   - AdjacencyList / FormatAdjacencyList: each node with its neighbors in
//     insertion order.
//
// Every view is a read-only snapshot; building one never modifies the graph
// and later graph mutations are not reflected.
//
// Matrices are best for dense or small graphs where O(V²) memory is acceptable.
package matrix
