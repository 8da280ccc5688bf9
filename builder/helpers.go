package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolath/core"
)

// Method tags and minima shared by the constructors.
const (
	methodPath          = "Path"
	methodCycle         = "Cycle"
	methodStar          = "Star"
	methodComplete      = "Complete"
	methodGrid          = "Grid"
	methodRandomSparse  = "RandomSparse"
	methodRandomRegular = "RandomRegular"
	methodPoissonRandom = "PoissonRandom"
	methodCopies        = "Copies"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minCompNodes  = 1
	minGridDim    = 1
	minRandNodes  = 1
	minCopies     = 1

	probMin = 0.0
	probMax = 1.0
)

// addVertices registers cfg.id(0..n-1) in ascending order and returns the names.
// Complexity: O(n).
func addVertices(method string, b *core.GraphBuilder, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.id(i)
		if _, err := b.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge forwards to b.AddEdge with method context. Dropped loops and
// repeated pairs are not errors.
func addEdge(method string, b *core.GraphBuilder, u, v string) error {
	if _, err := b.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, u, v, err)
	}

	return nil
}

// validateMin returns a wrapped ErrTooFewVertices when v < lo.
func validateMin(method, name string, v, lo int) error {
	if v < lo {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, v, lo, ErrTooFewVertices)
	}

	return nil
}

// validateProbability returns a wrapped ErrInvalidProbability when p ∉ [0,1].
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax || math.IsNaN(p) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}
