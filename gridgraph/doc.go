// Package gridgraph turns a 2D occupancy grid into a lattice graph, so that
// bond percolation can run on site-diluted lattices.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable OpenThreshold.
//   - Cells with value ≥ OpenThreshold are open sites; the rest are blocked.
//   - ToCoreGraph emits one vertex per open site, named "x,y", and one edge per
//     pair of neighbouring open sites.
//   - Clusters labels the connected groups of open sites directly on the grid,
//     which equals the component structure of ToCoreGraph at T = 1.
//
// Options:
//
//   - GridOptions.OpenThreshold: minimum value considered open.
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Complexity:
//
//   - Clusters:    O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ToCoreGraph: O(W×H×d + E log E), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: ReadGrid met a token that is not an integer.
package gridgraph
