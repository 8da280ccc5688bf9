package converters

import (
	"errors"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/percolath/core"
)

// ErrGraphNil is returned when a nil graph is passed to a converter.
var ErrGraphNil = errors.New("converters: graph is nil")

// ToGonum copies g into a gonum simple.UndirectedGraph. Every vertex is added,
// isolated ones included.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return EdgesToGonum(g.NumVertices(), g.Edges()), nil
}

// EdgesToGonum builds a gonum graph over n vertices from an explicit edge
// list, typically the edges retained by one percolation run.
// Edges with an endpoint outside [0,n) or with U == V are skipped.
func EdgesToGonum(n int, edges []core.Edge) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		ug.AddNode(simple.Node(int64(i)))
	}
	for _, e := range edges {
		if e.U == e.V || e.U < 0 || e.V < 0 || e.U >= n || e.V >= n {
			continue
		}
		ug.SetEdge(ug.NewEdge(simple.Node(int64(e.U)), simple.Node(int64(e.V))))
	}

	return ug
}

// FromGonum builds a core.Graph from any gonum undirected graph. Nodes are
// registered in ascending ID order under their decimal ID, so isolated nodes
// are kept and indices follow node order.
// Complexity: O(V log V + E).
func FromGonum(ug graph.Undirected) (*core.Graph, error) {
	if ug == nil {
		return nil, ErrGraphNil
	}

	nodes := graph.NodesOf(ug.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	b := core.NewGraphBuilder()
	for _, n := range nodes {
		if _, err := b.AddVertex(strconv.FormatInt(n.ID(), 10)); err != nil {
			return nil, err
		}
	}
	for _, u := range nodes {
		for _, v := range graph.NodesOf(ug.From(u.ID())) {
			if v.ID() <= u.ID() {
				continue // each undirected edge once
			}
			if _, err := b.AddEdge(strconv.FormatInt(u.ID(), 10), strconv.FormatInt(v.ID(), 10)); err != nil {
				return nil, err
			}
		}
	}

	return b.Build()
}
