package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph keyed by strings and register three nodes.
	g := core.NewGraph[string]()
	g.AddNode("A")
	g.AddNode("B")
	g.AddNode("C")

	// 2) Connect them; omitted weights default to 1.
	g.AddEdge("A", "B")
	g.AddEdge("B", "C", core.WithWeight(4))

	fmt.Println("Neighbors of B:", g.Neighbors("B"))
	fmt.Println("Weight C–B:", g.Weight("C", "B"))

	// 3) Removing a node drops it from every neighbor list.
	g.RemoveNode("B")
	fmt.Println("After removing B:", g.Keys(), g.Neighbors("A"))

	// Output:
	// Neighbors of B: [A C]
	// Weight C–B: 4
	// After removing B: [A C] []
}

// ExampleGraph_Save prints the text report of a small graph.
func ExampleGraph_Save() {
	g := core.NewGraph[int]()
	for _, k := range []int{1, 2, 3, 9} {
		g.AddNode(k)
	}
	g.AddEdge(2, 1)
	g.AddEdge(3, 2, core.WithWeight(0.5))

	fmt.Println(g.Save())

	// Output:
	// # n = 4
	// # m = 2
	// # mean_degree = 1
	//
	// # degree distribution:
	// # degree 0 = 1
	// # degree 1 = 2
	// # degree 2 = 1
	// 9
	// 1 2 1
	// 2 3 0.5
}
