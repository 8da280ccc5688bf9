package percolation_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/percolath/bfs"
	"github.com/katalvlaran/percolath/builder"
	"github.com/katalvlaran/percolath/converters"
	"github.com/katalvlaran/percolath/core"
	"github.com/katalvlaran/percolath/percolation"
)

// distributionFromSizes turns a list of component sizes into size → count.
func distributionFromSizes(sizes []int) map[int]int {
	out := make(map[int]int)
	for _, s := range sizes {
		out[s]++
	}

	return out
}

// TestCrossCheck_BFS compares every run against a BFS labelling of the same
// retained edge set.
func TestCrossCheck_BFS(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(21)}, builder.PoissonRandom(400, 2.5))
	require.NoError(t, err)
	e := percolation.New(g, percolation.WithSeed(21))

	for _, T := range []float64{0.2, 0.4, 0.6, 0.8} {
		e.BondPercolate(T)
		kept := make(map[core.Edge]struct{}, e.Retained())
		for _, edge := range e.RetainedEdges() {
			kept[edge] = struct{}{}
		}
		filter := bfs.WithFilterNeighbor(func(curr, nb int) bool {
			_, ok := kept[core.NewEdge(curr, nb)]
			return ok
		})

		comps, err := bfs.Components(g, filter)
		require.NoError(t, err)
		sizes := make([]int, len(comps))
		for i, c := range comps {
			sizes[i] = len(c)
			for _, v := range c {
				assert.Equal(t, len(c), e.ComponentSize(v), "T=%v vertex %d", T, v)
			}
		}
		assert.Equal(t, len(comps), e.ComponentCount(), "T=%v", T)
		assert.Equal(t, distributionFromSizes(sizes), e.Distribution(), "T=%v", T)
	}
}

// TestCrossCheck_Gonum compares a run with gonum's connected components of
// the retained subgraph.
func TestCrossCheck_Gonum(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(5)}, builder.Grid(15, 15))
	require.NoError(t, err)
	e := percolation.New(g, percolation.WithSeed(5))
	e.BondPercolate(0.5)

	ug := converters.EdgesToGonum(g.NumVertices(), e.RetainedEdges())
	var sizes []int
	for _, c := range topo.ConnectedComponents(ug) {
		sizes = append(sizes, len(c))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	require.NotEmpty(t, sizes)
	assert.Equal(t, len(sizes), e.ComponentCount())
	assert.Equal(t, sizes[0], e.LargestComponentSize())
	assert.Equal(t, distributionFromSizes(sizes), e.Distribution())
}

// TestCrossCheck_T1MatchesGraph checks that a full-retention run reproduces
// the components of the unthinned graph.
func TestCrossCheck_T1MatchesGraph(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(6)}, builder.RandomSparse(120, 0.015))
	require.NoError(t, err)
	e := percolation.New(g, percolation.WithSeed(6))
	e.BondPercolate(1)

	sizes, err := bfs.ComponentSizes(g)
	require.NoError(t, err)
	assert.Equal(t, sizes[0], e.LargestComponentSize())
	assert.Equal(t, distributionFromSizes(sizes), e.Distribution())
}
