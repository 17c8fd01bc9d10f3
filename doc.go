// Package lvgraph is an in-memory engine for undirected, weighted graphs:
// build them, walk them, measure them and project them into matrices.
//
// What is in the box?
//
//   - Core primitives: generic keyed nodes, symmetric weighted edges,
//     deterministic insertion-ordered adjacency and a re-loadable text report.
//   - Traversals: BFS and DFS with search trees, depth extras and visit hooks.
//   - Shortest paths: Dijkstra (O(V²) scan or binary heap), BFS fewest-hop
//     paths, and a dispatcher that picks between them.
//   - Minimum spanning trees: Prim and Kruskal, forests on disconnected input.
//   - Connectivity and distance metrics: components, mean distance,
//     eccentricity, diameter.
//   - Matrix views: adjacency, incidence, adjacency list and Floyd–Warshall
//     all-pairs distances on top of gonum/mat.
//   - Interop: a line-oriented loader, a gonum/graph adapter and DOT export.
//
// Layout:
//
//	core/:          Graph, Node, Edge, statistics and the Save report
//	bfs/, dfs/:     traversals, search trees, cycle detection
//	dijkstra/:      weighted single-source shortest paths
//	shortest/:      BFS-or-Dijkstra dispatch
//	prim_kruskal/:  minimum spanning trees and forests
//	components/:    connected components
//	distance/:      hop-distance metrics
//	matrix/:        adjacency, incidence and all-pairs matrices
//	converters/:    text loader, gonum adapter, DOT export
//	builder/:       deterministic topology generators
//	cmd/lvgraph:    command-line front end
//
// Quick ASCII example:
//
//	    1───2
//	     \  │
//	      \ │
//	        5───3
//	        │
//	        4
//
// represents the graph loaded from the lines "1 2", "2 5", "5 3", "4 5", "1 5".
//
//	go install github.com/katalvlaran/lvgraph/cmd/lvgraph@latest
package lvgraph
