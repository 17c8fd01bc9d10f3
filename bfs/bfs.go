// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, hop depths, parent links and a search tree.
package bfs

import (
	"strconv"

	"github.com/katalvlaran/lvgraph/core"
)

// queueItem pairs a vertex key with its BFS depth.
type queueItem[K core.Key] struct {
	key   K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K core.Key] struct {
	graph     *core.Graph[K]
	opts      Options[K]
	queue     []queueItem[K]
	visited   map[K]bool
	res       *Result[K]
	target    K
	hasTarget bool
}

// Search runs BFS until target is dequeued. If the frontier empties first,
// Result.Order is emptied and Found is false; the partial Tree is kept.
// A target absent from the graph is simply never reached.
func Search[K core.Key](g *core.Graph[K], target K, opts ...Option[K]) (*Result[K], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	w.target, w.hasTarget = target, true
	w.loop()
	if !w.res.Found {
		w.res.Order = []K{} // reachability failure is an empty result
	}

	return w.res, nil
}

// Explore runs BFS over every vertex reachable from the root.
func Explore[K core.Key](g *core.Graph[K], opts ...Option[K]) (*Result[K], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	w.loop()

	return w.res, nil
}

// Path returns a fewest-hop path from start to end together with the search
// tree grown until end was dequeued. The path is empty if end is unreachable.
// The path follows parent links; the raw visitation order truncated at end is
// Search(g, end, WithStart(start)).Order.
func Path[K core.Key](g *core.Graph[K], start, end K) ([]K, *core.Graph[K], error) {
	res, err := Search(g, end, WithStart(start))
	if err != nil {
		return nil, nil, err
	}
	if !res.Found {
		return []K{}, res.Tree, nil
	}
	path, err := res.PathTo(end)
	if err != nil {
		return nil, nil, err
	}

	return path, res.Tree, nil
}

// newWalker validates input, applies options and seeds the queue with the root.
func newWalker[K core.Key](g *core.Graph[K], opts []Option[K]) (*walker[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	// Resolve root
	root := o.Start
	if o.hasStart {
		if !g.HasNode(root) {
			return nil, ErrStartVertexNotFound
		}
	} else {
		first, ok := g.First()
		if !ok {
			return nil, ErrEmptyGraph
		}
		root = first.Key()
	}

	n := g.Order()
	w := &walker[K]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[K], 0, n),
		visited: make(map[K]bool, n),
		res: &Result[K]{
			Root:   root,
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
			Tree:   core.NewGraph[K](),
		},
	}
	w.discover(root, 0)

	return w, nil
}

// discover marks key visited at depth d, enqueues it and grows the search
// tree with it and the edge to its parent (if any).
func (w *walker[K]) discover(key K, d int) {
	w.visited[key] = true
	w.res.Depth[key] = d
	w.queue = append(w.queue, queueItem[K]{key: key, depth: d})

	w.res.Tree.AddNode(key).SetExtra(core.ExtraDepth, strconv.Itoa(d))
	if p, ok := w.res.Parent[key]; ok {
		w.res.Tree.AddEdge(p, key)
	}
}

// record appends a dequeued vertex to Order and fires the visit hook.
func (w *walker[K]) record(item queueItem[K]) {
	w.res.Order = append(w.res.Order, item.key)
	w.opts.OnVisit(item.key, item.depth)
}

// loop processes the queue until it is empty or the target is dequeued.
func (w *walker[K]) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.record(item)
		if w.hasTarget && item.key == w.target {
			w.res.Found = true
			return
		}

		for _, nbr := range w.graph.Neighbors(item.key) {
			if w.visited[nbr] {
				continue
			}
			w.res.Parent[nbr] = item.key
			w.discover(nbr, item.depth+1)
		}
	}
}
