// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates an empty graph, resolves bopts and applies cons in order.
// Constructors share one ID scheme, so two constructors over overlapping
// index ranges merge into the same vertices. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(from) … cfg.idFn(to-1) in ascending order.
func addVertices(g *core.Graph[string], cfg builderConfig, from, to int) {
	for i := from; i < to; i++ {
		g.AddNode(cfg.idFn(i))
	}
}

// link adds u–v weighted by cfg.weightFn.
func link(g *core.Graph[string], cfg builderConfig, u, v string) {
	g.AddEdge(u, v, core.WithWeight(cfg.weightFn(cfg.rng)))
}
