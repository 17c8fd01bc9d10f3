package core

import "sort"

// Degree returns the number of neighbors of key, or 0 if key is absent.
func (g *Graph[K]) Degree(key K) int {
	n, ok := g.Node(key)
	if !ok {
		return 0
	}

	return n.Degree()
}

// MeanDegree returns the sum of degrees divided by the node count.
// On an empty graph this is 0/0, i.e. NaN; callers that print it get "NaN".
func (g *Graph[K]) MeanDegree() float64 {
	var sum int
	for _, n := range g.slots {
		if n != nil {
			sum += n.Degree()
		}
	}

	return float64(sum) / float64(g.count)
}

// DegreeDistribution maps each degree to the number of nodes having it.
func (g *Graph[K]) DegreeDistribution() map[int]int {
	dist := make(map[int]int)
	for _, n := range g.slots {
		if n != nil {
			dist[n.Degree()]++
		}
	}

	return dist
}

// Degrees returns the distinct degrees present in the graph, ascending.
func (g *Graph[K]) Degrees() []int {
	dist := g.DegreeDistribution()
	out := make([]int, 0, len(dist))
	for d := range dist {
		out = append(out, d)
	}
	sort.Ints(out)

	return out
}

// UnconnectedNodes returns the nodes with no neighbors, in insertion order.
func (g *Graph[K]) UnconnectedNodes() []*Node[K] {
	var out []*Node[K]
	for _, n := range g.slots {
		if n != nil && n.Degree() == 0 {
			out = append(out, n)
		}
	}

	return out
}
