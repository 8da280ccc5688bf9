package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/percolath/percolation"
)

// ErrInvalidConfig is returned when a sweep Config cannot describe a grid.
var ErrInvalidConfig = errors.New("sweep: invalid config")

// upperTolerance admits a grid point that overshoots TMax by rounding.
const upperTolerance = 1e-5

// Percolator is the part of percolation.Engine a sweep needs.
type Percolator interface {
	BondPercolate(T float64) int
	Snapshot() (percolation.Stats, error)
}

// Config describes the probability grid and the number of passes over it.
type Config struct {
	TMin        float64
	TMax        float64
	Step        float64
	Simulations int
}

// DefaultConfig is the full [0,1] range in steps of 0.01, one pass.
func DefaultConfig() Config {
	return Config{TMin: 0, TMax: 1, Step: 0.01, Simulations: 1}
}

// Validate checks that the grid is finite and non-empty.
func (c Config) Validate() error {
	for _, v := range []float64{c.TMin, c.TMax, c.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound", ErrInvalidConfig)
		}
	}
	switch {
	case c.Step <= 0:
		return fmt.Errorf("%w: step %g must be > 0", ErrInvalidConfig, c.Step)
	case c.TMax < c.TMin:
		return fmt.Errorf("%w: t_max %g < t_min %g", ErrInvalidConfig, c.TMax, c.TMin)
	case c.Simulations < 1:
		return fmt.Errorf("%w: simulations %d must be ≥ 1", ErrInvalidConfig, c.Simulations)
	}

	return nil
}

// Points returns the T grid of one pass. The config must be valid.
func (c Config) Points() []float64 {
	var pts []float64
	for i := 0; ; i++ {
		t := c.TMin + float64(i)*c.Step
		if t > c.TMax+upperTolerance {
			break
		}
		pts = append(pts, t)
	}

	return pts
}

// Row is one observation: a pass index plus the run's statistics.
type Row struct {
	RunID      uuid.UUID
	Simulation int
	percolation.Stats
}

// Result reports what a sweep produced.
type Result struct {
	RunID uuid.UUID
	Rows  int
}

// Sink consumes rows as they are produced.
type Sink interface {
	Write(Row) error
	Flush() error
}

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	log   zerolog.Logger
	runID uuid.UUID
}

// WithLogger attaches a logger; each completed pass is logged at Info.
func WithLogger(l zerolog.Logger) Option {
	return func(c *runConfig) {
		c.log = l
	}
}

// WithRunID fixes the run identifier instead of drawing a random one.
func WithRunID(id uuid.UUID) Option {
	return func(c *runConfig) {
		c.runID = id
	}
}
