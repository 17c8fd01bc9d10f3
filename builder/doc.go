// SPDX-License-Identifier: MIT

// Package builder generates deterministic string-keyed core.Graph topologies:
// paths, cycles, stars, wheels, complete graphs, grids and seeded random
// graphs. It feeds fixtures to tests and the lvgraph "generate" command.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//	    builder.RandomSparse(20, 0.2),
//	)
//
// Contract:
//   - Vertices are added in ascending index order with IDs from the configured
//     IDFn ("0", "1", ... by default), so store order is predictable.
//   - Edges are added in a documented, stable order.
//   - Every edge weight comes from the configured WeightFn (constant 1 by
//     default).
//   - Constructors never panic at runtime; they return sentinel errors.
//     Option helpers panic on programmer errors (nil funcs, bad ranges).
//   - Same options, seed and constructor order ⇒ identical graphs.
package builder
