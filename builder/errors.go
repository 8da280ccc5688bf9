// SPDX-License-Identifier: MIT
// Package: percolath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with "%s: ...: %w" (method tag first).
//   - Validation order: sizes, then probabilities, then rng presence,
//     then construction failures after retries.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree,
// copies) is smaller than the allowed minimum or otherwise out of domain.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1] or a negative
// mean degree.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// random source (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or that a generator exhausted
// its bounded retries.
var ErrConstructFailed = errors.New("builder: construction failed")
