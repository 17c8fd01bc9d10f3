// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Errors (sentinel):
//
//	– ErrGraphNil        if the provided graph pointer is nil.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrVertexNotFound  if the start vertex does not exist in the graph.
//	– ErrUnknownStrategy if WithStrategy was given an unsupported value.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrVertexNotFound indicates that the start vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: start vertex not found in graph")

	// ErrUnknownStrategy indicates an unsupported minimum-selection strategy.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects how the next unvisited vertex is chosen.
type Strategy int

const (
	// StrategyScan rescans every unvisited vertex in store order and takes the
	// first strictly smallest distance. O(V²), fully deterministic ties.
	StrategyScan Strategy = iota

	// StrategyHeap uses a binary min-heap with lazy decrease-key.
	// O((V + E) log V). Distances match StrategyScan; among equal-cost
	// paths the chosen predecessor may differ.
	StrategyHeap
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Strategy Strategy // minimum-selection strategy (default StrategyScan)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrategy selects the minimum-selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns Options using StrategyScan.
func DefaultOptions() Options {
	return Options{Strategy: StrategyScan}
}

// Result is the outcome of a single Dijkstra run.
//
// Path  – start…end along predecessor links; empty if end is unreachable.
// Tree  – every graph node plus one edge per predecessor link recorded during
//
//	relaxation (the shortest-path forest grown so far), with original weights.
//
// Dist  – final or tentative distance of every reached vertex; unreachable
//
//	vertices are absent.
type Result[K core.Key] struct {
	Path []K
	Tree *core.Graph[K]
	Dist map[K]float64
	Prev map[K]K
}

// Cost returns the distance to key, or +Inf if key was not reached.
func (r *Result[K]) Cost(key K) float64 {
	if d, ok := r.Dist[key]; ok {
		return d
	}

	return math.Inf(1)
}
