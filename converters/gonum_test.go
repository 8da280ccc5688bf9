package converters_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/percolath/bfs"
	"github.com/katalvlaran/percolath/converters"
	"github.com/katalvlaran/percolath/core"
)

// TestToGonum_ComponentsAgree compares gonum's connected components with the
// bfs labelling on the same graph.
func TestToGonum_ComponentsAgree(t *testing.T) {
	g, err := core.ReadEdgeList(strings.NewReader("a b\nb c\nd e\nf g\ng h\nh f\n"))
	require.NoError(t, err)

	ug, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, g.NumVertices(), ug.Nodes().Len())
	assert.Equal(t, g.NumEdges(), ug.Edges().Len())

	var gonumSizes []int
	for _, c := range topo.ConnectedComponents(ug) {
		gonumSizes = append(gonumSizes, len(c))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(gonumSizes)))

	bfsSizes, err := bfs.ComponentSizes(g)
	require.NoError(t, err)
	assert.Equal(t, bfsSizes, gonumSizes)
}

// TestEdgesToGonum skips invalid edges and keeps isolated vertices.
func TestEdgesToGonum(t *testing.T) {
	ug := converters.EdgesToGonum(4, []core.Edge{{U: 0, V: 1}, {U: 2, V: 2}, {U: 1, V: 9}})

	assert.Equal(t, 4, ug.Nodes().Len())
	assert.Equal(t, 1, ug.Edges().Len())
	assert.True(t, ug.HasEdgeBetween(0, 1))
}

// TestFromGonum round-trips a small gonum graph.
func TestFromGonum(t *testing.T) {
	ug := simple.NewUndirectedGraph()
	for i := int64(0); i < 5; i++ {
		ug.AddNode(simple.Node(i))
	}
	ug.SetEdge(ug.NewEdge(simple.Node(3), simple.Node(1)))
	ug.SetEdge(ug.NewEdge(simple.Node(1), simple.Node(2)))

	g, err := converters.FromGonum(ug)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, g.Names())
	assert.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 1, V: 3}}, g.Edges())

	_, err = converters.FromGonum(nil)
	assert.ErrorIs(t, err, converters.ErrGraphNil)
	_, err = converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrGraphNil)
}
