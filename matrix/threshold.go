package matrix

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolath/core"
)

// Thresholds holds estimates of the critical retention probability T_c.
// An estimate of +Inf means no giant component is expected at any T ≤ 1.
type Thresholds struct {
	MeanDegree   float64
	MeanSquare   float64
	MolloyReed   float64
	Spectral     float64
	SpectralDone bool // false when the graph was too large for the dense view
}

// MolloyReed returns ⟨k⟩/(⟨k²⟩−⟨k⟩) together with ⟨k⟩ and ⟨k²⟩.
func MolloyReed(g *core.Graph) (tc, k1, k2 float64) {
	if g == nil || g.NumVertices() == 0 {
		return math.Inf(1), 0, 0
	}
	adj := g.AdjacencyList()
	deg := make([]float64, len(adj))
	sq := make([]float64, len(adj))
	for i, nbrs := range adj {
		deg[i] = float64(len(nbrs))
		sq[i] = deg[i] * deg[i]
	}
	k1 = stat.Mean(deg, nil)
	k2 = stat.Mean(sq, nil)
	if k2-k1 <= 0 {
		return math.Inf(1), k1, k2
	}

	return k1 / (k2 - k1), k1, k2
}

// Estimate computes both threshold estimates. The spectral one is skipped,
// without error, when g exceeds MaxDenseVertices.
func Estimate(g *core.Graph) (Thresholds, error) {
	if g == nil {
		return Thresholds{}, ErrNilGraph
	}
	var t Thresholds
	t.MolloyReed, t.MeanDegree, t.MeanSquare = MolloyReed(g)
	if g.NumVertices() > MaxDenseVertices {
		return t, nil
	}
	lambda, err := SpectralRadius(g)
	if err != nil {
		return t, err
	}
	t.SpectralDone = true
	t.Spectral = math.Inf(1)
	if lambda > 0 {
		t.Spectral = 1 / lambda
	}

	return t, nil
}
