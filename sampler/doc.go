// Package sampler is the engine-owned pseudo-random source used by
// percolation runs.
//
// A Sampler wraps one *rand.Rand. Every draw advances the same stream, so
// successive runs on one engine never replay each other, while two samplers
// built with the same WithSeed value replay identically.
//
// Draws:
//
//	Retain(T)  – Bernoulli trial, true iff Float64() < T.
//	             T <= 0 is always false, T >= 1 is always true.
//	Vertex(n)  – int(Float64()*n), uniform over [0, n).
//
// Seeding policy:
//
//	New()                 – time-based seed (time.Now().UnixNano()).
//	New(WithSeed(s))      – reproducible stream, recorded by Seed().
//	New(WithRand(r))      – caller-owned generator; Seed() reports 0.
//
// A Sampler is not safe for concurrent use.
package sampler
