package sampler

import (
	"math/rand"
	"time"
)

// Sampler produces Bernoulli retention decisions and uniform vertex picks.
type Sampler struct {
	rng  *rand.Rand
	seed int64
}

// New builds a Sampler. Without options it seeds from the wall clock.
func New(opts ...Option) *Sampler {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		WithSeed(time.Now().UnixNano())(&cfg)
	}

	return &Sampler{rng: cfg.rng, seed: cfg.seed}
}

// Seed reports the seed the stream was created from, or 0 for an injected generator.
func (s *Sampler) Seed() int64 {
	return s.seed
}

// Retain draws once and reports whether an edge survives with probability T.
// The comparison is strict, so T == 0 never retains and T == 1 always does.
func (s *Sampler) Retain(T float64) bool {
	return s.Float64() < T
}

// Vertex returns a uniform index in [0, n). For n <= 0 it returns 0 without
// consuming the stream.
func (s *Sampler) Vertex(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Float64() * float64(n))
	// Float64()*n can round up to n for huge n.
	if v >= n {
		v = n - 1
	}

	return v
}

// Float64 returns the next uniform draw on [0,1). Retain and Vertex consume
// the stream through it, one draw per call.
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}
