package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/dfs"
)

// ExampleExplore demonstrates a pre-order traversal on a diamond-shaped graph.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func ExampleExplore() {
	g := core.NewGraph[string]()
	for _, k := range []string{"A", "B", "C", "D", "E", "F"} {
		g.AddNode(k)
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"}} {
		g.AddEdge(e[0], e[1])
	}

	res, err := dfs.Explore(g, dfs.WithStart("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order:", res.Order)
	fmt.Println("depth of C:", res.Depth["C"])

	// Output:
	// order: [A B D C E F]
	// depth of C: 3
}

// ExampleDetectCycle finds the square in a graph with a pendant vertex.
func ExampleDetectCycle() {
	g := core.NewGraph[int]()
	for i := 1; i <= 5; i++ {
		g.AddNode(i)
	}
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 1)
	g.AddEdge(4, 5)

	cycle, ok, _ := dfs.DetectCycle(g)
	fmt.Println(ok, cycle)

	// Output:
	// true [1 2 3 4 1]
}
