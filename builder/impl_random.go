// SPDX-License-Identifier: MIT
// Package: percolath/builder
//
// impl_random.go - random ensembles: RandomSparse, RandomRegular, PoissonRandom.
//
// Determinism:
//   - Vertices are registered as id(0..n-1) before any draw.
//   - Draws happen in a fixed order (pairs i<j ascending, or one stub
//     shuffle per attempt), so a fixed seed fixes the graph.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/percolath/core"
)

// maxStubMatchingAttempts bounds the reshuffles RandomRegular performs before
// giving up with ErrConstructFailed.
const maxStubMatchingAttempts = 200

// MaxPoissonMean is the largest mean degree PoissonRandom accepts. Beyond it
// e^-mean nears the float64 underflow (≈745) and Knuth's product method stops
// terminating on the threshold.
const MaxPoissonMean = 500.0

// RandomSparse samples G(n,p): each unordered pair {i,j} is kept
// independently with probability p. Requires n ≥ 1 and 0 ≤ p ≤ 1; the RNG is
// only required for 0 < p < 1.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.GraphBuilder, cfg builderConfig) error {
		// 1) Validate sizes, probability, then rng.
		if err := validateMin(methodRandomSparse, "n", n, minRandNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Register every vertex so isolated ones survive.
		ids, err := addVertices(methodRandomSparse, b, cfg, n)
		if err != nil {
			return err
		}

		// 3) Bernoulli trial per pair; p ∈ {0,1} is decided without draws.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = addEdge(methodRandomSparse, b, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomRegular builds a d-regular simple graph by stub matching: each vertex
// contributes d stubs, the stubs are shuffled and paired, and the pairing is
// rejected (and reshuffled) if it contains a loop or a repeated pair.
// Requires n ≥ 1, 0 ≤ d < n, n·d even and an RNG.
// Complexity: O(n·d) per attempt, at most maxStubMatchingAttempts attempts.
func RandomRegular(n, d int) Constructor {
	return func(b *core.GraphBuilder, cfg builderConfig) error {
		// 1) Domain: n ≥ 1, 0 ≤ d < n, parity.
		if err := validateMin(methodRandomRegular, "n", n, minRandNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		// 2) Vertices first; d == 0 leaves them isolated.
		ids, err := addVertices(methodRandomRegular, b, cfg, n)
		if err != nil {
			return err
		}
		if d == 0 {
			return nil
		}

		// 3) Stub list: vertex i repeated d times.
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// 4) Shuffle until the pairing is simple, then commit it.
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			shuffleInts(cfg.rng, stubs)
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err = addEdge(methodRandomRegular, b, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// PoissonRandom builds a configuration-model graph whose vertex degrees are
// drawn from a Poisson distribution with the given mean. When the degree sum
// is odd one extra stub goes to a uniformly drawn vertex. Stubs are shuffled
// once and paired; loops and repeated pairs are erased, so realised degrees
// can fall slightly below the drawn ones.
// Requires n ≥ 1, 0 ≤ mean ≤ MaxPoissonMean and an RNG unless mean == 0.
// Complexity: O(n·mean) expected.
func PoissonRandom(n int, mean float64) Constructor {
	return func(b *core.GraphBuilder, cfg builderConfig) error {
		if err := validateMin(methodPoissonRandom, "n", n, minRandNodes); err != nil {
			return err
		}
		if mean < 0 || math.IsNaN(mean) || mean > MaxPoissonMean {
			return fmt.Errorf("%s: mean degree %g must lie in [0, %g]: %w",
				methodPoissonRandom, mean, MaxPoissonMean, ErrInvalidProbability)
		}
		if mean > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodPoissonRandom, ErrNeedRandSource)
		}

		ids, err := addVertices(methodPoissonRandom, b, cfg, n)
		if err != nil {
			return err
		}
		if mean == 0 {
			return nil
		}

		// 1) Draw degrees and lay out stubs.
		var stubs []int
		for i := 0; i < n; i++ {
			for k := poisson(cfg.rng, mean); k > 0; k-- {
				stubs = append(stubs, i)
			}
		}
		if len(stubs)%2 != 0 {
			stubs = append(stubs, cfg.rng.Intn(n))
		}

		// 2) One shuffle, consecutive stubs pair up; the builder drops
		//    loops and duplicates.
		shuffleInts(cfg.rng, stubs)
		for i := 0; i < len(stubs); i += 2 {
			if err = addEdge(methodPoissonRandom, b, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
				return err
			}
		}

		return nil
	}
}

// poisson draws from Poisson(mean) by multiplying uniforms until the product
// drops below e^-mean (Knuth). mean must not exceed MaxPoissonMean.
func poisson(r *rand.Rand, mean float64) int {
	limit := math.Exp(-mean)
	k, p := 0, 1.0
	for {
		p *= r.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// shuffleInts permutes xs in place with r.
func shuffleInts(r *rand.Rand, xs []int) {
	r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
}

// simplePairing reports whether consecutive stub pairs contain neither a loop
// nor a repeated unordered pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
