// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters on an assembled Graph.
// Policy:
//   - No mutation here; a Graph is frozen by GraphBuilder.Build.
//   - Every getter is nil-safe so the zero Graph behaves as the empty graph.

package core

// NumVertices reports the number of distinct vertex names.
// Complexity: O(1).
func (g *Graph) NumVertices() int {
	if g == nil {
		return 0
	}

	return g.registry.Len()
}

// NumEdges reports the number of canonical edges.
// Complexity: O(1).
func (g *Graph) NumEdges() int {
	if g == nil {
		return 0
	}

	return g.store.Len()
}

// EachEdge calls fn for every edge in ascending (U,V) order without copying.
// fn must not retain or mutate graph internals.
// Complexity: O(E).
func (g *Graph) EachEdge(fn func(Edge)) {
	if g == nil {
		return
	}
	g.store.Each(fn)
}

// Edges returns a copy of the canonical edge list, ascending by (U,V).
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}

	return g.store.Edges()
}

// HasEdge reports whether vertices a and b are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	if g == nil {
		return false
	}

	return g.store.Has(a, b)
}

// Name returns the external name of vertex i.
func (g *Graph) Name(i int) (string, bool) {
	if g == nil {
		return "", false
	}

	return g.registry.Name(i)
}

// Index returns the vertex index assigned to name.
func (g *Graph) Index(name string) (int, bool) {
	if g == nil {
		return 0, false
	}

	return g.registry.Index(name)
}

// Names returns all vertex names ordered by index.
func (g *Graph) Names() []string {
	if g == nil {
		return nil
	}

	return g.registry.Names()
}

// AdjacencyList builds neighbour lists over every edge of the graph.
// Neighbours of each vertex appear in edge order, so the result is
// deterministic for a given Graph.
// Complexity: O(V+E) time and space.
func (g *Graph) AdjacencyList() [][]int {
	adj := make([][]int, g.NumVertices())
	g.EachEdge(func(e Edge) {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	})

	return adj
}
