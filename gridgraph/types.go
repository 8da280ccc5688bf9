package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates a grid token that does not parse as an integer.
	ErrBadCell = errors.New("gridgraph: cell is not an integer")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// OpenThreshold specifies the minimum cell value considered an open site.
	OpenThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns OpenThreshold=1 (values ≥1 are open) and Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a lattice. It is immutable once built.
// CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	OpenThreshold   int
	neighborOffsets [][2]int
}
