package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/percolath/core"
)

// Components labels the connected components of g (or of the subgraph
// selected by WithFilterNeighbor). Components are listed in order of their
// smallest vertex; members appear in BFS visit order. Isolated vertices form
// singleton components.
//
// A filter must be symmetric (fn(u,v) == fn(v,u)) for the result to be an
// undirected component structure. MaxDepth is rejected.
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if w.opts.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: Components does not accept MaxDepth", ErrOptionViolation)
	}

	var comps [][]int
	for v := range w.adj {
		if w.res.Depth[v] >= 0 {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(v, 0, -1)
		if err := w.loop(); err != nil {
			return nil, err
		}
		members := make([]int, len(w.res.Order)-from)
		copy(members, w.res.Order[from:])
		comps = append(comps, members)
	}

	return comps, nil
}

// ComponentSizes returns the sizes of all components, largest first.
func ComponentSizes(g *core.Graph, opts ...Option) ([]int, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return nil, err
	}
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes, nil
}
