// Package dfs implements depth-first search traversal and cycle detection
// on an undirected core.Graph.
//
// What:
//
//   - Search(g, target, opts...): pre-order DFS that halts the moment the
//     target is visited. If it is never visited the Order is empty while the
//     partial search tree is kept.
//   - Explore(g, opts...): pre-order DFS over everything reachable.
//   - DetectCycle(g): reports one cycle, if any, using vertex coloring
//     (White, Gray, Black) and back-edge detection.
//
// Traversal uses an explicit stack of frames (vertex, neighbor snapshot,
// next index) instead of recursion; the resulting order is exactly the
// recursive pre-order over the graph's insertion-ordered neighbor lists.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option / Options: WithStart, WithOnVisit
//   - Result: Order, Depth, Parent, Tree, Found
//
// Complexity:
//
//   - Search, Explore: Time O(V+E), Memory O(V)
//   - DetectCycle:     Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrEmptyGraph           no start given and the graph is empty
//   - ErrStartVertexNotFound  start key not in graph
package dfs
