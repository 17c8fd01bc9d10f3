// Package dijkstra provides Dijkstra's single-target shortest-path algorithm
// on weighted undirected graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, start, end) returns the cheapest start→end path, the
//     shortest-path forest grown while searching, and every reached distance.
//   - The search stops as soon as end is selected, or when no reachable
//     vertex remains.
//   - Negative weights are rejected before any relaxation with ErrNegativeWeight.
//   - An unreachable (or absent) end produces an empty Path, never an error
//     and never an unbounded predecessor walk.
//
// Strategies:
//
//   - StrategyScan (default): each round rescans all unvisited vertices in the
//     graph's store order; the first strictly smallest distance wins. O(V²).
//   - StrategyHeap: lazy decrease-key binary heap. O((V + E) log V). Produces
//     the same distances; among equal-cost alternatives the path may differ.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, "A", "D")
//	if errors.Is(err, dijkstra.ErrNegativeWeight) {
//	    // check g.WeightsNonNegative() before calling
//	}
//	fmt.Println(res.Path, res.Cost("D"))
package dijkstra
