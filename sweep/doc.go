// Package sweep drives a percolation engine across a grid of retention
// probabilities and hands every observation to one or more sinks.
//
// A sweep repeats Simulations passes; each pass visits
//
//	T = TMin, TMin+Step, TMin+2·Step, …
//
// up to and including TMax (a point within 1e-5 of TMax still counts), calls
// BondPercolate(T) and emits one Row carrying the run's Stats. Grid points
// are computed as TMin + i·Step rather than by repeated addition, so they do
// not drift over long grids.
//
// Sinks:
//
//	TableSink     fixed-width text table, 15-character columns, '#' header
//	MemorySink    in-memory rows, feeds Summarize
//	store.SQLiteSink (package store) persists rows keyed by run ID
//
// Summarize groups rows by T and reports mean and standard deviation of the
// component statistics (gonum/stat).
//
// Cancellation: the context is checked between runs, never inside one.
package sweep
