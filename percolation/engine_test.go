package percolation_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/percolath/builder"
	"github.com/katalvlaran/percolath/core"
	"github.com/katalvlaran/percolath/percolation"
	"github.com/katalvlaran/percolath/sampler"
)

// EngineSuite exercises run semantics and statistic queries on small graphs
// whose component structure is known in advance.
type EngineSuite struct {
	suite.Suite
	dir string
}

func (s *EngineSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

// file writes src into the suite's temp dir and returns its path.
func (s *EngineSuite) file(name, src string) string {
	p := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(p, []byte(src), 0o600))

	return p
}

// engine builds an engine from edge-list text with a fixed seed.
func (s *EngineSuite) engine(src string) *percolation.Engine {
	g, err := core.ReadEdgeList(strings.NewReader(src))
	s.Require().NoError(err)

	return percolation.New(g, percolation.WithSeed(1))
}

// sumOfSizes totals size*count over the distribution.
func sumOfSizes(dist map[int]int) int {
	sum := 0
	for size, count := range dist {
		sum += size * count
	}

	return sum
}

func (s *EngineSuite) TestOpen() {
	e, err := percolation.Open(s.file("g.txt", "# header\nA B\nB C\n"), percolation.WithSeed(3))
	s.Require().NoError(err)
	s.Equal(3, e.NumVertices())
	s.Equal(2, e.NumEdges())
	s.Equal(int64(3), e.Seed())
}

func (s *EngineSuite) TestOpen_Unreadable() {
	e, err := percolation.Open(filepath.Join(s.dir, "missing.txt"))
	s.Nil(e)
	s.True(errors.Is(err, core.ErrSourceUnavailable))
}

func (s *EngineSuite) TestLoadIdempotence() {
	src := "x y\ny z\n# note\nz w\nw x\nx z extra tokens\n"
	p := s.file("same.txt", src)
	e1, err := percolation.Open(p)
	s.Require().NoError(err)
	e2, err := percolation.Open(p)
	s.Require().NoError(err)

	s.Equal(e1.NumVertices(), e2.NumVertices())
	s.Equal(e1.Graph().Names(), e2.Graph().Names())
	s.Equal(e1.Graph().Edges(), e2.Graph().Edges())
}

func (s *EngineSuite) TestDedupAndSelfLoop() {
	e := s.engine("A B\nB A\nA A\n")
	s.Equal(2, e.NumVertices())
	s.Equal(1, e.NumEdges())

	s.Equal(1, e.BondPercolate(1))
	s.Equal([]core.Edge{{U: 0, V: 1}}, e.RetainedEdges())
}

func (s *EngineSuite) TestBoundary_T0() {
	e := s.engine("A B\nB C\nC D\nD A\nA C\n")

	s.Zero(e.BondPercolate(0))
	s.Empty(e.RetainedEdges())
	s.Equal(4, e.ComponentCount())
	s.Equal(1, e.LargestComponentSize())
	s.Equal(1, e.SecondLargestComponentSize())
	for v := 0; v < 4; v++ {
		s.Equal(1, e.ComponentSize(v))
	}
}

func (s *EngineSuite) TestBoundary_T0_SingleVertexPair() {
	// Two vertices, nothing retained: co-largest singletons.
	e := s.engine("A B\n")
	e.BondPercolate(0)
	s.Equal(1, e.SecondLargestComponentSize())
}

func (s *EngineSuite) TestBoundary_T1() {
	g, err := builder.BuildGraph(nil,
		builder.Copies(3, builder.Path(5)),
		builder.Complete(4))
	s.Require().NoError(err)
	e := percolation.New(g, percolation.WithSeed(9))

	s.Equal(g.NumEdges(), e.BondPercolate(1))
	s.Equal(g.Edges(), e.RetainedEdges())
	s.Equal(4, e.ComponentCount())
	s.Equal(map[int]int{5: 3, 4: 1}, e.Distribution())
	s.Equal(5, e.LargestComponentSize())
	s.Equal(5, e.SecondLargestComponentSize())
}

func (s *EngineSuite) TestPathOfFour() {
	e := s.engine("A B\nB C\nC D\n")

	s.Equal(3, e.BondPercolate(1))
	s.Equal(1, e.ComponentCount())
	s.Equal(4, e.LargestComponentSize())
	// A single component has no runner-up.
	s.Equal(0, e.SecondLargestComponentSize())
}

func (s *EngineSuite) TestTwoTriangles() {
	e := s.engine("a b\nb c\nc a\nd e\ne f\nf d\n")

	s.Equal(6, e.BondPercolate(1))
	s.Equal(2, e.ComponentCount())
	s.Equal(3, e.LargestComponentSize())
	s.Equal(3, e.SecondLargestComponentSize())
}

func (s *EngineSuite) TestSecondLargest_Distinct() {
	// Components of sizes 4, 2 and 2.
	e := s.engine("a b\nb c\nc d\ne f\ng g2\n")
	e.BondPercolate(1)
	s.Equal(4, e.LargestComponentSize())
	s.Equal(2, e.SecondLargestComponentSize())
}

func (s *EngineSuite) TestConservation() {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(4)}, builder.PoissonRandom(500, 3))
	s.Require().NoError(err)
	e := percolation.New(g, percolation.WithSeed(4))

	for _, T := range []float64{0, 0.1, 0.25, 0.33, 0.5, 0.75, 0.9, 1} {
		retained := e.BondPercolate(T)
		s.Equal(retained, len(e.RetainedEdges()))
		s.Equal(e.NumVertices(), sumOfSizes(e.Distribution()), "T=%v", T)

		count := 0
		for _, c := range e.Distribution() {
			count += c
		}
		s.Equal(e.ComponentCount(), count, "T=%v", T)
	}
	s.Equal(8, e.Runs())
}

func (s *EngineSuite) TestRootStability() {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(2)}, builder.Grid(10, 10))
	s.Require().NoError(err)
	e := percolation.New(g, percolation.WithSeed(2))
	e.BondPercolate(0.5)

	first := make([]int, e.NumVertices())
	for v := range first {
		first[v] = e.ComponentSize(v)
	}
	// Interleave other read-only queries and revisit in reverse.
	_ = e.LargestComponentSize()
	_ = e.SecondLargestComponentSize()
	_ = e.RandomComponentSize()
	for v := len(first) - 1; v >= 0; v-- {
		s.Equal(first[v], e.ComponentSize(v), "vertex %d", v)
	}
}

func (s *EngineSuite) TestQueryBeforeRun() {
	e := s.engine("A B\nB C\n")

	s.False(e.Percolated())
	s.Zero(e.ComponentCount())
	s.Zero(e.ComponentSize(0))
	s.Zero(e.LargestComponentSize())
	s.Zero(e.SecondLargestComponentSize())
	s.Nil(e.RetainedEdges())
	_, err := e.Snapshot()
	s.ErrorIs(err, percolation.ErrNotPercolated)

	e.BondPercolate(1)
	st, err := e.Snapshot()
	s.Require().NoError(err)
	s.Equal(percolation.Stats{T: 1, Vertices: 3, Retained: 2, Largest: 3, SecondLargest: 0, Components: 1}, st)
}

func (s *EngineSuite) TestComponentSize_OutOfRange() {
	e := s.engine("A B\n")
	e.BondPercolate(1)
	s.Zero(e.ComponentSize(-1))
	s.Zero(e.ComponentSize(2))
}

func (s *EngineSuite) TestEmptyGraph() {
	e := percolation.New(nil, percolation.WithSeed(1))
	s.Zero(e.BondPercolate(0.5))
	s.Zero(e.ComponentCount())
	s.Zero(e.LargestComponentSize())
	s.Zero(e.SecondLargestComponentSize())
	s.Zero(e.RandomComponentSize())
}

func (s *EngineSuite) TestSeedReproducible() {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(8)}, builder.RandomSparse(80, 0.05))
	s.Require().NoError(err)

	a := percolation.New(g, percolation.WithSeed(42))
	b := percolation.New(g, percolation.WithSampler(sampler.New(sampler.WithSeed(42))))
	for i := 0; i < 5; i++ {
		s.Equal(a.BondPercolate(0.6), b.BondPercolate(0.6))
		s.Equal(a.RetainedEdges(), b.RetainedEdges())
		s.Equal(a.RandomComponentSize(), b.RandomComponentSize())
	}
}

func (s *EngineSuite) TestStreamContinues() {
	g, err := builder.BuildGraph(nil, builder.Complete(30))
	s.Require().NoError(err)
	e := percolation.New(g, percolation.WithSeed(5))

	e.BondPercolate(0.5)
	first := e.RetainedEdges()
	e.BondPercolate(0.5)
	// 435 edges at T=0.5: two identical draws are practically impossible.
	s.NotEqual(first, e.RetainedEdges())
}

func (s *EngineSuite) TestLogging() {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	e := percolation.New(nil, percolation.WithSeed(1), percolation.WithLogger(log))

	e.BondPercolate(1.5)
	out := buf.String()
	s.Contains(out, `"level":"warn"`)
	s.Contains(out, `"message":"bond percolation run"`)
}

func (s *EngineSuite) TestWithSampler_PanicsOnNil() {
	s.Panics(func() { percolation.WithSampler(nil) })
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}
