// Package components partitions a core.Graph into connected components.
//
// Components runs a full depth-first exploration from every node not yet
// labeled (in store order), so each component lists its nodes in DFS
// pre-order from its first node. The partition is then sorted largest
// first; equal sizes keep discovery order.
//
// Complexity: O(V + E) time, O(V) memory.
package components

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/dfs"
)

// ErrGraphNil is returned when a nil graph is passed to Components.
var ErrGraphNil = errors.New("components: graph is nil")

// Components returns the connected components of g. Every node appears in
// exactly one component and no component is empty. An empty graph has none.
func Components[K core.Key](g *core.Graph[K]) ([][]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	labeled := make(map[K]bool, g.Order())
	comps := make([][]K, 0)
	for _, k := range g.Keys() {
		if labeled[k] {
			continue
		}
		res, err := dfs.Explore(g, dfs.WithStart(k))
		if err != nil {
			return nil, fmt.Errorf("components: %w", err)
		}
		for _, v := range res.Order {
			labeled[v] = true
		}
		comps = append(comps, res.Order)
	}

	// largest first, ties keep discovery order
	sort.SliceStable(comps, func(i, j int) bool {
		return len(comps[i]) > len(comps[j])
	})

	return comps, nil
}

// Count returns the number of connected components of g.
func Count[K core.Key](g *core.Graph[K]) (int, error) {
	comps, err := Components(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// Format renders comps as a human-readable report:
//
//	There are 2 connected components in this graph.
//
//	Component 1: [ a, b, c ]
//	Component 2: [ d ]
func Format[K core.Key](comps [][]K) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "There are %d connected components in this graph.\n\n", len(comps))
	for i, comp := range comps {
		names := make([]string, len(comp))
		for j, k := range comp {
			names[j] = fmt.Sprint(k)
		}
		fmt.Fprintf(&sb, "Component %d: [ %s ]\n", i+1, strings.Join(names, ", "))
	}

	return sb.String()
}
