// Package dfs implements depth-first search on core.Graph with an explicit
// stack of frames, so arbitrarily deep graphs never grow the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frame stack and metadata maps.
package dfs

import (
	"strconv"

	"github.com/katalvlaran/lvgraph/core"
)

// frame is one level of the simulated recursion: the vertex being expanded,
// its neighbor snapshot, and the index of the next neighbor to try.
type frame[K core.Key] struct {
	key   K
	nbrs  []K
	next  int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[K core.Key] struct {
	graph     *core.Graph[K]
	opts      Options[K]
	res       *Result[K]
	visited   map[K]bool
	stack     []frame[K]
	target    K
	hasTarget bool
}

// Search performs DFS from the root until target is visited. Traversal halts
// immediately on the target. If the target is never visited, Order is emptied
// and Found is false; the partial Tree is retained.
func Search[K core.Key](g *core.Graph[K], target K, opts ...Option[K]) (*Result[K], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	w.target, w.hasTarget = target, true
	w.run()
	if !w.res.Found {
		w.res.Order = []K{}
	}

	return w.res, nil
}

// Explore performs DFS over every vertex reachable from the root.
func Explore[K core.Key](g *core.Graph[K], opts ...Option[K]) (*Result[K], error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	w.run()

	return w.res, nil
}

func newWalker[K core.Key](g *core.Graph[K], opts []Option[K]) (*dfsWalker[K], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Resolve the root
	root := dopts.Start
	if dopts.hasStart {
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

	// 4. Initialize result with capacity hint
	n := g.Order()
	return &dfsWalker[K]{
		graph: g,
		opts:  dopts,
		res: &Result[K]{
			Root:   root,
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
			Tree:   core.NewGraph[K](),
		},
		visited: make(map[K]bool, n),
	}, nil
}

// run drives the frame stack. It returns early once the target is visited.
func (w *dfsWalker[K]) run() {
	if w.visit(w.res.Root, 0) {
		return
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbrs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		nbr := top.nbrs[top.next]
		top.next++
		if w.visited[nbr] {
			continue
		}

		// copy out of top: visit may grow the stack and move it
		parent, depth := top.key, top.depth+1
		w.res.Parent[nbr] = parent
		found := w.visit(nbr, depth)
		w.res.Tree.AddEdge(parent, nbr)
		if found {
			return
		}
	}
}

// visit records key in pre-order and pushes its frame.
// Reports whether key is the search target.
func (w *dfsWalker[K]) visit(key K, depth int) bool {
	w.visited[key] = true
	w.res.Depth[key] = depth
	w.res.Order = append(w.res.Order, key)
	w.res.Tree.AddNode(key).SetExtra(core.ExtraDepth, strconv.Itoa(depth))
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(key, depth)
	}
	if w.hasTarget && key == w.target {
		w.res.Found = true
		return true
	}
	w.stack = append(w.stack, frame[K]{key: key, nbrs: w.graph.Neighbors(key), depth: depth})

	return false
}
