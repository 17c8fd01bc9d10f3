// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

const (
	minPathNodes    = 2
	minCycleNodes   = 3
	minStarNodes    = 2
	minWheelNodes   = 4
	minCompleteNode = 1
	minGridDim      = 1
	gridIDFmt       = "%d,%d"
)

// Path builds P_n (n ≥ 2): edges i–(i+1) for i = 0..n-2.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, 0, n)
		for i := 0; i+1 < n; i++ {
			link(g, cfg, cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Cycle builds C_n (n ≥ 3): edges i–(i+1)%n for i = 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, 0, n)
		for i := 0; i < n; i++ {
			link(g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Star builds a star on n vertices (n ≥ 2): vertex 0 is the center and
// spokes 0–i are added for i = 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, 0, n)
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			link(g, cfg, center, cfg.idFn(i))
		}

		return nil
	}
}

// Wheel builds W_n (n ≥ 4): a rim cycle over vertices 1..n-1 first, then
// spokes from center 0 to each rim vertex.
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, 0, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			link(g, cfg, cfg.idFn(1+i), cfg.idFn(1+(i+1)%rim))
		}
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			link(g, cfg, center, cfg.idFn(i))
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1): every pair i < j, in lexicographic (i, j) order.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNode {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNode, ErrTooFewVertices)
		}
		addVertices(g, cfg, 0, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(g, cfg, cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood lattice. Vertex IDs are always
// "r,c" (the ID scheme is ignored); vertices are added row-major, and each
// cell links right, then down.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(id(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					link(g, cfg, id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					link(g, cfg, id(r, c), id(r+1, c))
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n, p) graph: each pair i < j, visited
// in lexicographic order, becomes an edge with probability p. p of exactly 0
// or 1 needs no RNG; anything in between requires WithSeed or WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		addVertices(g, cfg, 0, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == 0:
					continue
				case p == 1, cfg.rng.Float64() < p:
					link(g, cfg, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
