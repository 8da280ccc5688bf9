// Package bfs provides breadth-first search and connected-component labelling
// over the index-based core.Graph.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a
//     start index and returns visit Order, Depth and Parent slices.
//   - Components repeats BFS from every unvisited vertex, in index order, and
//     returns the vertex sets of all connected components.
//   - WithFilterNeighbor restricts traversal to a subgraph without copying it,
//     e.g. to the edges retained by a percolation run.
//
// Why
//
//   - An independent component labelling to validate union-find clustering.
//   - Unweighted shortest paths and reachability for diagnostics.
//
// Determinism
//
//	Neighbours are visited in core.Graph.AdjacencyList order, which follows the
//	ascending (U,V) edge order, so Order and component membership lists are
//	reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the adjacency snapshot and per-vertex slices.
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
//	comps, err := bfs.Components(g, bfs.WithFilterNeighbor(keep))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      for invalid options (negative MaxDepth, or a
//     depth limit passed to Components).
//   - Wrapped OnVisit errors and context errors.
package bfs
