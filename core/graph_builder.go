package core

import "fmt"

// GraphBuilder assembles a Graph incrementally with the same normalisation
// rules as the edge-list loader: names are registered in first-seen order,
// self-loops are dropped before registration and repeated pairs collapse.
//
// A GraphBuilder is single-use: after Build every mutating call returns
// ErrGraphBuilt.
type GraphBuilder struct {
	registry *Registry
	store    *EdgeStore
	built    bool
}

// NewGraphBuilder returns an empty GraphBuilder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		registry: newRegistry(),
		store:    newEdgeStore(),
	}
}

// AddVertex registers name and returns its index. Re-adding an existing name
// is a no-op that returns the existing index. Vertices added this way may stay
// isolated, which the text format cannot express.
func (gb *GraphBuilder) AddVertex(name string) (int, error) {
	if gb.built {
		return 0, fmt.Errorf("AddVertex(%q): %w", name, ErrGraphBuilt)
	}
	if name == "" {
		return 0, ErrEmptyVertexID
	}

	return gb.registry.resolve(name), nil
}

// AddEdge records the undirected edge {a,b}. It reports whether a new edge was
// stored: a self-loop (a == b) or a repeated pair returns false with a nil error.
// Complexity: O(1) amortized.
func (gb *GraphBuilder) AddEdge(a, b string) (bool, error) {
	if gb.built {
		return false, fmt.Errorf("AddEdge(%q,%q): %w", a, b, ErrGraphBuilt)
	}
	if a == "" || b == "" {
		return false, ErrEmptyVertexID
	}
	// Self-loops are discarded before either name is registered.
	if a == b {
		return false, nil
	}
	u := gb.registry.resolve(a)
	v := gb.registry.resolve(b)

	return gb.store.insert(u, v), nil
}

// Build freezes the accumulated vertices and edges into a Graph.
// Complexity: O(E log E) for the final edge sort.
func (gb *GraphBuilder) Build() (*Graph, error) {
	if gb.built {
		return nil, fmt.Errorf("Build: %w", ErrGraphBuilt)
	}
	gb.built = true
	gb.store.freeze()

	return &Graph{registry: gb.registry, store: gb.store}, nil
}
