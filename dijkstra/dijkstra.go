// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// It processes vertices in order of increasing distance from the start,
// relaxing edges to unvisited neighbors, and stops once the target is
// selected or no reachable vertex remains.
//
// Complexity:
//
//   - StrategyScan: O(V²) time, O(V) space.
//   - StrategyHeap: O((V + E) log V) time, O(V + E) space.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a “lazy” decrease-key strategy in heap mode: pushing duplicates
//     into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvgraph/core"
)

// Dijkstra computes a shortest path from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. No edge in g can have negative weight (ErrNegativeWeight).
//  3. g must contain start (ErrVertexNotFound).
//
// An absent or unreachable end yields an empty Path, not an error.
func Dijkstra[K core.Key](g *core.Graph[K], start, end K, opts ...Option) (*Result[K], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Pre-scan all edges to detect negative weights before any relaxation.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v–%v weight=%s", ErrNegativeWeight, e.From, e.To, core.FormatNumber(e.Weight))
		}
	}

	// 4) Validate start exists in the graph
	if !g.HasNode(start) {
		return nil, ErrVertexNotFound
	}

	// 5) Initialize runner: dist(start)=0, everything else +Inf
	keys := g.Keys()
	r := &runner[K]{
		g:       g,
		keys:    keys,
		dist:    make(map[K]float64, len(keys)),
		prev:    make(map[K]K, len(keys)),
		visited: make(map[K]bool, len(keys)),
		end:     end,
	}
	for _, k := range keys {
		r.dist[k] = math.Inf(1)
	}
	r.dist[start] = 0

	// 6) Run main loop
	switch cfg.Strategy {
	case StrategyScan:
		r.runScan()
	case StrategyHeap:
		r.runHeap(start)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, cfg.Strategy)
	}

	return r.result(start), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[K core.Key] struct {
	g       *core.Graph[K] // The input graph; read-only within Dijkstra.
	keys    []K            // Vertex keys in store order.
	dist    map[K]float64  // Maps vertex → current best distance from start.
	prev    map[K]K        // Maps vertex → predecessor on the shortest path.
	visited map[K]bool     // Tracks if a vertex's distance is finalized.
	end     K
}

// runScan repeatedly selects the unvisited vertex with the smallest distance by
// rescanning all keys; the first strictly smaller candidate wins ties.
func (r *runner[K]) runScan() {
	for {
		var (
			u     K
			found bool
			best  = math.Inf(1)
		)
		for _, k := range r.keys {
			if !r.visited[k] && r.dist[k] < best {
				u, best, found = k, r.dist[k], true
			}
		}
		// no reachable vertex remains, or the target is selected
		if !found || u == r.end {
			return
		}
		r.visited[u] = true
		r.relax(u, nil)
	}
}

// runHeap is the priority-queue variant of runScan.
func (r *runner[K]) runHeap(start K) {
	pq := make(nodePQ[K], 0, len(r.keys))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem[K]{id: start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem[K])
		// skip stale heap entry
		if r.visited[item.id] {
			continue
		}
		if item.id == r.end {
			return
		}
		r.visited[item.id] = true
		r.relax(item.id, &pq)
	}
}

// relax improves distances to the unvisited neighbors of u. When pq is
// non-nil every improvement is also pushed onto the heap.
func (r *runner[K]) relax(u K, pq *nodePQ[K]) {
	node, _ := r.g.Node(u)
	for _, v := range node.Neighbors() {
		if r.visited[v] {
			continue
		}
		w, _ := node.Weight(v)
		nd := r.dist[u] + w
		// strictly smaller only
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		if pq != nil {
			heap.Push(pq, &nodeItem[K]{id: v, dist: nd})
		}
	}
}

// result assembles the path, the predecessor forest and the finite distances.
func (r *runner[K]) result(start K) *Result[K] {
	res := &Result[K]{
		Path: []K{},
		Tree: core.NewGraph[K](),
		Dist: make(map[K]float64, len(r.keys)),
		Prev: r.prev,
	}

	// Tree: every node first, then one edge per predecessor link, in store order
	for _, k := range r.keys {
		res.Tree.AddNode(k)
	}
	for _, k := range r.keys {
		if p, ok := r.prev[k]; ok {
			res.Tree.AddEdge(p, k, core.WithWeight(r.g.Weight(p, k)))
		}
		if d := r.dist[k]; !math.IsInf(d, 1) {
			res.Dist[k] = d
		}
	}

	// Path: only if end was reached; the walk is bounded by the vertex count
	if _, ok := res.Dist[r.end]; !ok {
		return res
	}
	rev := []K{r.end}
	for cur := r.end; cur != start && len(rev) <= len(r.keys); {
		cur = r.prev[cur]
		rev = append(rev, cur)
	}
	for i := len(rev) - 1; i >= 0; i-- {
		res.Path = append(res.Path, rev[i])
	}

	return res
}

// nodeItem represents a vertex and its tentative distance from the start.
type nodeItem[K core.Key] struct {
	id   K
	dist float64
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by dist ascending.
type nodePQ[K core.Key] []*nodeItem[K]

// Len returns the number of items in the heap.
func (pq nodePQ[K]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[K]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[K]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[K])) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ[K]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
