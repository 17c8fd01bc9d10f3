// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgraph/core"
)

// Row is one line of an adjacency list: a node and its neighbors in the
// order the edges were added.
type Row[K core.Key] struct {
	Key       K
	Neighbors []K
}

// AdjacencyList projects g into one Row per node, in store order.
func AdjacencyList[K core.Key](g *core.Graph[K]) ([]Row[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := g.Nodes()
	rows := make([]Row[K], 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, Row[K]{Key: n.Key(), Neighbors: n.Neighbors()})
	}

	return rows, nil
}

// FormatAdjacencyList renders rows as "key: [ a, b ]" lines, each ending in
// a newline. A node without neighbors prints "key: [  ]".
func FormatAdjacencyList[K core.Key](rows []Row[K]) string {
	var sb strings.Builder
	for _, r := range rows {
		names := make([]string, len(r.Neighbors))
		for i, k := range r.Neighbors {
			names[i] = fmt.Sprint(k)
		}
		fmt.Fprintf(&sb, "%v: [ %s ]\n", r.Key, strings.Join(names, ", "))
	}

	return sb.String()
}
