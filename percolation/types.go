// Package percolation defines engine options, run statistics and sentinel errors.
package percolation

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/percolath/sampler"
)

// ErrNotPercolated is returned by Snapshot before the first completed run.
var ErrNotPercolated = errors.New("percolation: no run has completed")

// Stats is one tabulated observation of a run.
type Stats struct {
	// T is the retention probability used for the run.
	T float64

	// Vertices is the number of vertices in the graph.
	Vertices int

	// Retained is the number of edges kept by the run.
	Retained int

	// Largest is the size of the largest component.
	Largest int

	// SecondLargest follows the co-largest rule documented on the package.
	SecondLargest int

	// Components is the number of connected components, singletons included.
	Components int
}

// Option configures an Engine at construction.
type Option func(*engineConfig)

// engineConfig is resolved once in New.
type engineConfig struct {
	sampler *sampler.Sampler
	logger  zerolog.Logger
}

// defaultEngineConfig yields a time-seeded sampler and a silent logger.
func defaultEngineConfig() engineConfig {
	return engineConfig{logger: zerolog.Nop()}
}

// WithSeed fixes the engine's random stream for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.sampler = sampler.New(sampler.WithSeed(seed))
	}
}

// WithSampler hands the engine an existing Sampler. Panics on nil.
func WithSampler(s *sampler.Sampler) Option {
	if s == nil {
		panic("percolation: WithSampler(nil)")
	}
	return func(c *engineConfig) {
		c.sampler = s
	}
}

// WithLogger attaches a structured logger; runs are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}
