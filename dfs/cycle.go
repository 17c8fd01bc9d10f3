package dfs

import (
	"github.com/katalvlaran/lvgraph/core"
)

// DetectCycle reports whether the undirected graph g contains a cycle and,
// if so, returns one as a closed walk [v0, v1, ..., v0].
// A self-loop is the cycle [v, v]. Roots are tried in store order, so the
// reported cycle is deterministic.
//
// Complexity: O(V + E) time, O(V) memory.
func DetectCycle[K core.Key](g *core.Graph[K]) ([]K, bool, error) {
	// 1) Nil graph is an error, an empty graph is acyclic
	if g == nil {
		return nil, false, ErrGraphNil
	}

	// 2) Visitation state: White (unseen), Gray (on path), Black (done)
	state := make(map[K]int, g.Order())
	parent := make(map[K]K, g.Order())

	// 3) Launch from every unvisited vertex to cover all components
	for _, root := range g.Keys() {
		if state[root] != White {
			continue
		}
		if cycle := findBackEdge(g, root, state, parent); cycle != nil {
			return cycle, true, nil
		}
	}

	return nil, false, nil
}

// findBackEdge runs one iterative DFS tree from root. The first edge to a
// Gray vertex other than the tree parent closes a cycle.
func findBackEdge[K core.Key](g *core.Graph[K], root K, state map[K]int, parent map[K]K) []K {
	stack := []frame[K]{{key: root, nbrs: g.Neighbors(root)}}
	state[root] = Gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			state[top.key] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		id := top.key
		nbr := top.nbrs[top.next]
		top.next++

		switch state[nbr] {
		case White:
			parent[nbr] = id
			state[nbr] = Gray
			stack = append(stack, frame[K]{key: nbr, nbrs: g.Neighbors(nbr), depth: top.depth + 1})
		case Gray:
			// skip the tree edge back to the parent; simple graphs have no parallel edges
			if p, ok := parent[id]; ok && p == nbr && nbr != id {
				continue
			}
			return closeCycle(nbr, id, parent)
		}
	}

	return nil
}

// closeCycle walks parent links from id back to start and returns
// [start, ..., id, start].
func closeCycle[K core.Key](start, id K, parent map[K]K) []K {
	rev := []K{id}
	for cur := id; cur != start; {
		cur = parent[cur]
		rev = append(rev, cur)
	}
	cycle := make([]K, 0, len(rev)+1)
	for i := len(rev) - 1; i >= 0; i-- {
		cycle = append(cycle, rev[i])
	}

	return append(cycle, start)
}
