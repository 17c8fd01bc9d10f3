// Package prim_kruskal provides two algorithms for computing a Minimum Spanning
// Tree (or forest) of an undirected, weighted *core.Graph: Prim’s algorithm and
// Kruskal’s algorithm.
//
// What & Why
//
//   - Given an undirected, weighted graph G = (V, E), a minimum spanning forest
//     is a subset T ⊆ E connecting every vertex to everything it can reach in G,
//     with the sum of weights in T minimized. On a graph with k connected
//     components it has exactly |V| − k edges.
//
// Algorithms Provided
//
//   - Kruskal(g) (*core.Graph[K], error)
//
//   - Strategy: stably sort all edges by weight, then add each edge whose
//     endpoints lie in different Disjoint-Set (Union-Find) sets.
//
//   - Handles disconnected input by producing a spanning forest.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g) (*core.Graph[K], error)
//
//   - Strategy: grow a single tree from the first node. Every round rescans
//     all edges leaving the tree and takes the strictly cheapest one; the
//     first found wins ties. Halts when no crossing edge remains, leaving the
//     nodes of other components isolated.
//
//   - Complexity: O(V² · avg-degree) time, O(V) space.
//
//   - Compute(g, opts...) dispatches on WithMethod(MethodKruskal | MethodPrim).
//
// Both return a new graph that contains every node of the input, including
// isolated ones, and only the chosen edges. The input graph is never modified.
//
// Errors
//
//   - ErrGraphNil       graph pointer is nil.
//   - ErrUnknownMethod  Compute was asked for an unsupported method.
package prim_kruskal
