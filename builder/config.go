// SPDX-License-Identifier: MIT
// Package: percolath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn = DefaultIDFn ("0","1","2",...)
//   - rng  = nil (deterministic constructors only, unless seeded)

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors.
// It is passed by value so a constructor may derive a scoped copy
// (see Copies) without affecting its siblings.
type builderConfig struct {
	// Vertex ID strategy: index -> name.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness available.
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults; later options
// override earlier ones.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// id maps index i through the configured scheme.
func (c builderConfig) id(i int) string {
	return c.idFn(i)
}

// withPrefix returns a copy of c whose IDs are prefixed, sharing the RNG.
func (c builderConfig) withPrefix(prefix string) builderConfig {
	inner := c.idFn
	c.idFn = func(i int) string { return prefix + inner(i) }

	return c
}
