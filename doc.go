// Package percolath runs bond percolation on undirected graphs and measures
// the resulting connected-component structure.
//
// Given an edge list, every edge is kept independently with retention
// probability T and the surviving components are clustered with a union-find
// forest. From the clustering you can read the number of components, the
// largest and second-largest sizes, the size distribution, and the size of
// the component holding a random vertex.
//
// Under the hood, everything is organized into subpackages:
//
//	core/        — index-based Graph, edge-list loader and writer
//	dsu/         — union-find with path halving and union by size
//	sampler/     — seedable uniform draws for thinning and vertex picks
//	percolation/ — the Engine: thinning, clustering and component queries
//	sweep/       — repeated runs over a grid of T, table and summary sinks
//	store/       — SQLite persistence of sweep rows
//	builder/     — deterministic and random graph generators
//	gridgraph/   — lattice graphs from occupancy grids
//	bfs/         — breadth-first components, an independent cross-check
//	converters/  — bridges to gonum graphs
//	matrix/      — adjacency matrix and threshold estimates
//	config/      — viper configuration and zerolog setup
//	cmd/percolath — the command-line front end
//
// Quick example:
//
//	e, err := percolation.Open("network.edge", percolation.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	e.BondPercolate(0.6)
//	fmt.Println(e.LargestComponentSize(), e.SecondLargestComponentSize())
package percolath
