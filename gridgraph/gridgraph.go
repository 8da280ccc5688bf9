package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/percolath/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is deep-copied.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		OpenThreshold:   opts.OpenThreshold,
		neighborOffsets: offsets,
	}, nil
}

// ReadGrid parses whitespace-separated integer rows from r and builds a
// GridGraph. Blank lines and lines starting with "#" are skipped.
func ReadGrid(r io.Reader, opts GridOptions) (*GridGraph, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("ReadGrid: line %d: %q: %w", line, f, ErrBadCell)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadGrid: %w", err)
	}

	return NewGridGraph(rows, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsOpen reports whether (x,y) is inside the grid and open.
func (gg *GridGraph) IsOpen(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.OpenThreshold
}

// NeighborOffsets returns the neighbour offsets for the grid's connectivity.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// OpenSites counts the open cells.
func (gg *GridGraph) OpenSites() int {
	n := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsOpen(x, y) {
				n++
			}
		}
	}

	return n
}

// VertexID formats the vertex name used for cell (x,y).
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph converts the open sites into an undirected *core.Graph.
// Vertices are registered in row-major order, so vertex indices follow the
// grid scan; open sites without open neighbours stay as isolated vertices.
// Complexity: O(W×H×d + E log E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	b := core.NewGraphBuilder()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsOpen(x, y) {
				continue
			}
			if _, err := b.AddVertex(VertexID(x, y)); err != nil {
				return nil, fmt.Errorf("ToCoreGraph: %w", err)
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsOpen(x, y) {
				continue
			}
			u := VertexID(x, y)
			for _, d := range gg.NeighborOffsets() {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsOpen(nx, ny) {
					continue
				}
				// the reverse direction collapses in the edge store
				if _, err := b.AddEdge(u, VertexID(nx, ny)); err != nil {
					return nil, fmt.Errorf("ToCoreGraph: %w", err)
				}
			}
		}
	}

	return b.Build()
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
