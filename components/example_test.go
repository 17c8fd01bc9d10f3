package components_test

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/components"
	"github.com/katalvlaran/lvgraph/core"
)

func ExampleFormat() {
	g := core.NewGraph[int]()
	for i := 1; i <= 5; i++ {
		g.AddNode(i)
	}
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)

	comps, _ := components.Components(g)
	fmt.Print(components.Format(comps))

	// Output:
	// There are 2 connected components in this graph.
	//
	// Component 1: [ 3, 4, 5 ]
	// Component 2: [ 1, 2 ]
}
