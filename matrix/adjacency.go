// SPDX-License-Identifier: MIT
package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/percolath/core"
)

// MaxDenseVertices bounds the order of graphs given a dense matrix view.
const MaxDenseVertices = 4096

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrTooLarge is returned when a dense view would exceed MaxDenseVertices.
	ErrTooLarge = errors.New("matrix: graph too large for a dense matrix")

	// ErrNoEigen is returned when the eigendecomposition does not converge.
	ErrNoEigen = errors.New("matrix: eigendecomposition failed")
)

// Adjacency returns the V×V symmetric adjacency matrix of g, with row and
// column i standing for vertex index i. An empty graph yields (nil, nil).
// Complexity: O(V² + E) time and O(V²) memory.
func Adjacency(g *core.Graph) (*mat.SymDense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumVertices()
	if n > MaxDenseVertices {
		return nil, fmt.Errorf("Adjacency: %d vertices: %w", n, ErrTooLarge)
	}
	if n == 0 {
		return nil, nil
	}
	a := mat.NewSymDense(n, nil)
	g.EachEdge(func(e core.Edge) {
		a.SetSym(e.U, e.V, 1)
	})

	return a, nil
}

// SpectralRadius returns the largest eigenvalue of the adjacency matrix.
// An empty graph has radius 0.
func SpectralRadius(g *core.Graph) (float64, error) {
	a, err := Adjacency(g)
	if err != nil {
		return 0, err
	}
	if a == nil {
		return 0, nil
	}
	var es mat.EigenSym
	if !es.Factorize(a, false) {
		return 0, ErrNoEigen
	}
	vals := es.Values(nil)

	// Values are ascending.
	return vals[len(vals)-1], nil
}
