package converters

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/katalvlaran/lvgraph/core"
)

// MarshalDOT renders g as an undirected Graphviz graph called name.
// Node IDs are the core keys, edges carry a weight attribute and node extras
// (such as a search tree's depth) become node attributes.
func MarshalDOT[K core.Key](g *core.Graph[K], name string) ([]byte, error) {
	b, err := dot.Marshal(ToGonum(g), name, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("converters: dot: %w", err)
	}

	return b, nil
}
