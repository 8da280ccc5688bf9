// SPDX-License-Identifier: MIT
// Package: percolath/sampler
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil RNG).
//   • Later options override earlier ones.

package sampler

import "math/rand"

// Option customizes a Sampler before first use.
type Option func(*config)

// config collects the resolved seeding policy.
type config struct {
	rng    *rand.Rand
	seed   int64
	seeded bool
}

// WithSeed creates a deterministic stream from seed.
// Use this in tests and sweeps that must be replayable.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
		c.seed = seed
		c.seeded = true
	}
}

// WithRand injects a caller-owned generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seed = 0
		c.seeded = false
	}
}
