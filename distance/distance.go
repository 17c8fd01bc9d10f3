// Package distance computes hop-count distance metrics of a core.Graph using
// repeated breadth-first search.
package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvgraph/bfs"
	"github.com/katalvlaran/lvgraph/core"
)

// ErrGraphNil is returned when a nil graph is passed to a metric.
var ErrGraphNil = errors.New("distance: graph is nil")

// Distances returns the hop distance from source to every other node it
// reaches, in BFS discovery order. The source itself is excluded and
// unreachable nodes are simply absent. An absent source yields an empty slice.
func Distances[K core.Key](g *core.Graph[K], source K) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(source) {
		return []int{}, nil
	}

	res, err := bfs.Explore(g, bfs.WithStart(source))
	if err != nil {
		return nil, fmt.Errorf("distance: %w", err)
	}
	out := make([]int, 0, len(res.Order)-1)
	for _, k := range res.Order[1:] {
		out = append(out, res.Depth[k])
	}

	return out, nil
}

// MeanDistance averages Distances over every node of g. Each reachable
// unordered pair is therefore counted twice, once from each end, which
// leaves the mean unchanged. A graph with no reachable pair (empty, or
// without edges) has a mean of 0/0 = NaN.
func MeanDistance[K core.Key](g *core.Graph[K]) (float64, error) {
	if g == nil {
		return math.NaN(), ErrGraphNil
	}

	var sum, count int
	for _, k := range g.Keys() {
		ds, err := Distances(g, k)
		if err != nil {
			return math.NaN(), err
		}
		for _, d := range ds {
			sum += d
		}
		count += len(ds)
	}

	return float64(sum) / float64(count), nil
}

// Eccentricity returns the greatest hop distance from source to any node it
// reaches; 0 for an isolated or absent source.
func Eccentricity[K core.Key](g *core.Graph[K], source K) (int, error) {
	ds, err := Distances(g, source)
	if err != nil {
		return 0, err
	}
	// BFS discovery order is non-decreasing in depth
	if len(ds) == 0 {
		return 0, nil
	}

	return ds[len(ds)-1], nil
}

// Diameter returns the largest eccentricity over all nodes of g, i.e. the
// longest shortest path inside any component.
func Diameter[K core.Key](g *core.Graph[K]) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	best := 0
	for _, k := range g.Keys() {
		e, err := Eccentricity(g, k)
		if err != nil {
			return 0, err
		}
		best = max(best, e)
	}

	return best, nil
}
