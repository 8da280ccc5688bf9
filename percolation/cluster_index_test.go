package percolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolath/core"
	"github.com/katalvlaran/percolath/dsu"
)

func TestClusterIndex_SecondLargest(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		want  int
	}{
		{"empty", nil, 0},
		{"single", []int{1}, 0},
		{"one component", []int{0, 4, 0, 0}, 0},
		{"tie", []int{3, 0, 0, 3, 0, 0}, 3},
		{"distinct", []int{5, 0, 2, 1, 2}, 2},
		{"singletons", []int{1, 1, 1}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clusterIndex{sizes: tc.sizes}.secondLargest())
		})
	}
}

func TestClusterIndex_DenseOverMaxRoot(t *testing.T) {
	uf := dsu.New(6)
	uf.Union(0, 1) // root 0
	uf.Union(2, 3) // root 2
	idx := newClusterIndex(uf)

	// Roots are 0, 2, 4 and 5; the table spans [0,5].
	assert.Equal(t, []int{2, 0, 2, 0, 1, 1}, idx.sizes)
	assert.Equal(t, 4, idx.count())
	assert.Equal(t, 6, idx.total())
	assert.Equal(t, map[int]int{2: 2, 1: 2}, idx.distribution())
}

// TestRecountMatchesUnionSizes checks that the post-pass recount agrees with
// the sizes accumulated during merging.
func TestRecountMatchesUnionSizes(t *testing.T) {
	b := core.NewGraphBuilder()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for i := range names {
		for j := i + 1; j < len(names); j += 3 {
			_, err := b.AddEdge(names[i], names[j])
			require.NoError(t, err)
		}
	}
	g, err := b.Build()
	require.NoError(t, err)

	e := New(g, WithSeed(17))
	for _, T := range []float64{0.1, 0.3, 0.5} {
		e.BondPercolate(T)
		require.Equal(t, g.NumVertices(), e.index.total())
		for v := 0; v < g.NumVertices(); v++ {
			assert.Equal(t, e.forest.Size(v), e.index.sizeOf(e.forest.Find(v)), "T=%v vertex %d", T, v)
		}
		assert.Equal(t, e.forest.Count(), e.index.count())
	}
}
