// SPDX-License-Identifier: MIT
// Package: percolath/core
//
// types.go — Edge, Registry, EdgeStore, Graph and the sentinel errors.
//
// Invariants:
//   - Edge.U < Edge.V for every stored edge (canonical orientation).
//   - Registry indices are dense: names[i] is the i-th distinct name seen.
//   - EdgeStore.edges is sorted ascending by (U,V) once frozen.
//   - A Graph never changes after GraphBuilder.Build returns it.

package core

import "errors"

// Sentinel errors for graph assembly and loading.
var (
	// ErrSourceUnavailable indicates the edge-list source could not be opened or read.
	ErrSourceUnavailable = errors.New("core: edge-list source unavailable")

	// ErrEmptyVertexID indicates an empty vertex name was supplied to GraphBuilder.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrGraphBuilt indicates a GraphBuilder was reused after Build.
	ErrGraphBuilt = errors.New("core: graph already built")
)

// Edge is an undirected edge between two distinct vertex indices,
// stored with the smaller index first.
type Edge struct {
	// U is the smaller endpoint index.
	U int

	// V is the larger endpoint index.
	V int
}

// NewEdge returns the canonical Edge for the unordered pair {a,b}.
// It does not reject a == b; callers filter self-loops before calling.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Registry is the bidirectional mapping between vertex names and indices.
type Registry struct {
	index map[string]int // name → index
	names []string       // index → name
}

// EdgeStore is the deduplicated set of canonical edges.
type EdgeStore struct {
	set    map[Edge]struct{} // membership
	edges  []Edge            // insertion order until frozen, then sorted
	frozen bool
}

// Graph couples a Registry with its EdgeStore. Construct it with
// LoadFile, ReadEdgeList or GraphBuilder; the zero value is an empty graph.
type Graph struct {
	registry *Registry
	store    *EdgeStore
}
