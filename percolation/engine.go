// SPDX-License-Identifier: MIT
// Package: percolath/percolation
//
// engine.go — the percolation engine: construction, one run, queries.
//
// Invariants after every BondPercolate:
//   - index.total() == graph.NumVertices()
//   - index.count() == number of components of the thinned graph
//   - the graph itself is never mutated

package percolation

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/percolath/core"
	"github.com/katalvlaran/percolath/dsu"
	"github.com/katalvlaran/percolath/sampler"
)

const methodOpen = "Open"

// Engine runs bond percolation over one immutable graph.
type Engine struct {
	graph   *core.Graph
	sampler *sampler.Sampler
	log     zerolog.Logger

	// Run state, replaced wholesale by each BondPercolate.
	adjacency  [][]int // retained neighbour lists, buffers reused across runs
	forest     *dsu.UnionFind
	index      clusterIndex
	lastT      float64
	retained   int
	runs       int
	percolated bool
}

// Open loads an edge-list file and returns an engine over it. A source that
// cannot be opened or read yields core.ErrSourceUnavailable and no engine.
func Open(path string, opts ...Option) (*Engine, error) {
	g, err := core.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodOpen, err)
	}
	e := New(g, opts...)
	e.log.Info().
		Str("path", path).
		Int("vertices", g.NumVertices()).
		Int("edges", g.NumEdges()).
		Int64("seed", e.sampler.Seed()).
		Msg("edge list loaded")

	return e, nil
}

// New wraps an already assembled graph. A nil graph is treated as empty.
func New(g *core.Graph, opts ...Option) *Engine {
	if g == nil {
		g = &core.Graph{}
	}
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sampler == nil {
		cfg.sampler = sampler.New()
	}

	return &Engine{
		graph:   g,
		sampler: cfg.sampler,
		log:     cfg.logger,
	}
}

// Graph returns the underlying immutable graph.
func (e *Engine) Graph() *core.Graph {
	return e.graph
}

// Seed reports the seed of the engine's random stream (0 if injected).
func (e *Engine) Seed() int64 {
	return e.sampler.Seed()
}

// NumVertices reports the number of vertices of the loaded graph.
func (e *Engine) NumVertices() int {
	return e.graph.NumVertices()
}

// NumEdges reports the number of canonical edges of the loaded graph.
func (e *Engine) NumEdges() int {
	return e.graph.NumEdges()
}

// Runs reports how many runs have completed on this engine.
func (e *Engine) Runs() int {
	return e.runs
}

// Percolated reports whether at least one run has completed.
func (e *Engine) Percolated() bool {
	return e.percolated
}

// BondPercolate keeps every edge with probability T, clusters the survivors
// and returns the number of retained edges. T outside [0,1] behaves like the
// nearest bound.
// Complexity: O(V + E·α(V)).
func (e *Engine) BondPercolate(T float64) int {
	if T < 0 || T > 1 {
		e.log.Warn().Float64("T", T).Msg("retention probability outside [0,1]")
	}

	retained := e.thin(T)
	e.forest = e.cluster()
	e.index = newClusterIndex(e.forest)
	e.lastT = T
	e.retained = retained
	e.runs++
	e.percolated = true

	e.log.Debug().
		Int("run", e.runs).
		Float64("T", T).
		Int("retained", retained).
		Int("components", e.index.count()).
		Int("largest", e.index.largest()).
		Msg("bond percolation run")

	return retained
}

// thin rebuilds the retained adjacency and returns the retained edge count.
func (e *Engine) thin(T float64) int {
	n := e.graph.NumVertices()
	if len(e.adjacency) != n {
		e.adjacency = make([][]int, n)
	}
	for i := range e.adjacency {
		e.adjacency[i] = e.adjacency[i][:0]
	}

	kept := 0
	e.graph.EachEdge(func(edge core.Edge) {
		if !e.sampler.Retain(T) {
			return
		}
		e.adjacency[edge.U] = append(e.adjacency[edge.U], edge.V)
		e.adjacency[edge.V] = append(e.adjacency[edge.V], edge.U)
		kept++
	})

	return kept
}

// cluster performs the single forward union pass over every retained edge.
// Each edge is seen twice (once per endpoint); the second visit finds equal
// roots and is a no-op.
func (e *Engine) cluster() *dsu.UnionFind {
	uf := dsu.New(len(e.adjacency))
	for i, nbrs := range e.adjacency {
		for _, j := range nbrs {
			uf.Union(i, j)
		}
	}

	return uf
}

// ComponentCount returns the number of components of the latest run.
func (e *Engine) ComponentCount() int {
	return e.index.count()
}

// ComponentSize returns the size of the component containing v, or 0 when v
// is out of range or no run has completed.
func (e *Engine) ComponentSize(v int) int {
	if !e.percolated || v < 0 || v >= e.forest.Len() {
		return 0
	}

	return e.index.sizeOf(e.forest.Find(v))
}

// LargestComponentSize returns the largest component size of the latest run.
func (e *Engine) LargestComponentSize() int {
	return e.index.largest()
}

// SecondLargestComponentSize returns the second largest component size under
// the co-largest rule.
func (e *Engine) SecondLargestComponentSize() int {
	return e.index.secondLargest()
}

// RandomVertex draws a uniform vertex index from the engine's stream.
func (e *Engine) RandomVertex() int {
	return e.sampler.Vertex(e.graph.NumVertices())
}

// RandomComponentSize returns the component size of a uniformly drawn vertex,
// which samples sizes proportionally to component mass.
func (e *Engine) RandomComponentSize() int {
	if e.graph.NumVertices() == 0 {
		return 0
	}

	return e.ComponentSize(e.RandomVertex())
}

// Distribution returns, for the latest run, the number of components of each
// size. The map is freshly allocated.
func (e *Engine) Distribution() map[int]int {
	return e.index.distribution()
}

// Retained returns the edge count kept by the latest run.
func (e *Engine) Retained() int {
	return e.retained
}

// Snapshot returns the statistics row of the latest run.
func (e *Engine) Snapshot() (Stats, error) {
	if !e.percolated {
		return Stats{}, ErrNotPercolated
	}

	return Stats{
		T:             e.lastT,
		Vertices:      e.graph.NumVertices(),
		Retained:      e.retained,
		Largest:       e.index.largest(),
		SecondLargest: e.index.secondLargest(),
		Components:    e.index.count(),
	}, nil
}

// RetainedEdges returns the edges kept by the latest run, canonical and
// ascending by (U,V). It is nil before the first run.
// Complexity: O(V + retained).
func (e *Engine) RetainedEdges() []core.Edge {
	if !e.percolated {
		return nil
	}
	out := make([]core.Edge, 0, e.retained)
	for i, nbrs := range e.adjacency {
		for _, j := range nbrs {
			if j > i {
				out = append(out, core.Edge{U: i, V: j})
			}
		}
	}

	return out
}
