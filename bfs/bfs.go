package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/percolath/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state. One walker can serve several
// traversals over the same adjacency (Components reuses its visited set).
type walker struct {
	adj   [][]int
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// newWalker resolves options and snapshots the adjacency of g.
func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adj := g.AdjacencyList()
	n := len(adj)
	res := &BFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	return &walker{adj: adj, opts: o, ctx: o.Ctx, res: res}, nil
}

// BFS runs breadth-first search on g starting from start.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= len(w.adj) {
		return nil, ErrStartVertexNotFound
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks id reached at depth d and appends it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues unseen neighbours.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.adj[item.id] {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.res.Depth[nbr] < 0 {
			w.enqueue(nbr, next, item.id)
		}
	}
}
