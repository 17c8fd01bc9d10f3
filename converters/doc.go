// Package converters moves graphs in and out of core.Graph:
//   - ReadText / ParseText load the line-oriented edge-list format that
//     core.Graph.Save writes, so saved reports round-trip.
//   - ToGonum adapts a core.Graph to gonum/graph (simple.WeightedUndirectedGraph),
//     giving access to gonum's path, topo and encoding packages.
//   - MarshalDOT renders a core.Graph as Graphviz DOT via gonum/graph/encoding/dot.
package converters
