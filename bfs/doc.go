// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, hop distances, parent links and the search tree.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a root vertex.
//   - Search stops as soon as a target is dequeued; Explore runs until the
//     frontier is empty.
//   - Every run builds a search tree: a fresh core.Graph holding each
//     discovered vertex (with extra "depth" set to its distance) and a
//     weight-1 edge from each vertex to its discoverer. Vertices still
//     queued when Search stops are part of the tree.
//   - Path reconstructs a fewest-hop route through the parent links.
//
// Determinism
//
//	Neighbors are enqueued in the order the graph stores them (insertion
//	order), and the default root is the first node in store order. Two runs
//	over the same graph produce identical results.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Search(g, "3", bfs.WithStart("1"))
//	if err != nil {
//	    // ErrGraphNil, ErrEmptyGraph or ErrStartVertexNotFound
//	}
//	if !res.Found {
//	    // res.Order is empty, res.Tree holds everything that was reached
//	}
//
//	path, tree, err := bfs.Path(g, "1", "3")
//
// Options
//
//   - WithStart(key):   root the search at key (default: first node).
//   - WithOnVisit(fn):  hook called with (key, depth) on every dequeue.
package bfs
