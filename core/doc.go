// Package core provides the immutable, index-based graph that every
// percolation run starts from.
//
// A Graph G = (V,E) is assembled once, from an edge-list text source or
// programmatically, and never mutated afterwards:
//
//   - Registry maps external vertex names (opaque, case-sensitive tokens)
//     to dense indices [0, NumVertices) in first-seen order, and back.
//   - EdgeStore holds each undirected edge once, canonically as (min,max),
//     with self-loops and parallel edges removed.
//
// Why indices?
//
//   - Union-find, adjacency lists and size tables become flat []int slices.
//   - Name lookups happen only at the boundary (load time, reporting).
//
// Edge-list format (ReadEdgeList, LoadFile):
//
//	# lines whose first token is "#" are comments
//	  leading whitespace is allowed
//	[name] [name] [anything else is ignored]
//
// Lines with fewer than two tokens are skipped silently. A line naming the
// same vertex twice is a self-loop and is discarded before either name is
// registered. Repeated pairs, in either direction, collapse into one edge.
//
// Core API:
//
//	LoadFile(path string) (*Graph, error)       // O(L) over input lines
//	ReadEdgeList(r io.Reader) (*Graph, error)   // O(L)
//	NewGraphBuilder().AddEdge(a, b).Build()     // programmatic assembly
//	WriteEdgeList(w io.Writer, g *Graph) error  // O(E), inverse of ReadEdgeList
//
//	g.NumVertices() int                         // O(1)
//	g.NumEdges() int                            // O(1)
//	g.EachEdge(fn func(Edge))                   // O(E), ascending (U,V)
//	g.Edges() []Edge                            // O(E) copy
//	g.Name(i int) (string, bool)                // O(1)
//	g.Index(name string) (int, bool)            // O(1)
//	g.AdjacencyList() [][]int                   // O(V+E)
//
// Errors:
//
//	ErrSourceUnavailable – the input could not be opened or read; no Graph is returned.
//	ErrEmptyVertexID     – GraphBuilder received an empty vertex name.
//	ErrGraphBuilt        – GraphBuilder was used after Build.
//
// A Graph is safe for concurrent readers because nothing writes to it after
// Build returns.
package core
