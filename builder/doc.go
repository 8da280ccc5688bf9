// Package builder provides deterministic generators for the undirected simple
// graphs that percolation experiments run on.
//
// Every generator is a Constructor: a closure that receives a
// *core.GraphBuilder together with the resolved builderConfig and adds
// vertices and edges to it. BuildGraph resolves the options, applies the
// constructors in order and freezes the result into a *core.Graph, so several
// constructors can be composed into one graph (for example two disjoint
// triangles via Copies(2, Cycle(3))).
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption: functional option mutating builderConfig.
//     – WithSeed / WithRand: the random source for stochastic generators.
//     – WithIDScheme and friends: how vertex indices map to names.
//   - Vertex ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     AlphanumericIDFn, HexIDFn, SymbolNumberIDFn.
//   - Deterministic topologies: Path, Cycle, Star, Complete, Grid.
//   - Random ensembles: RandomSparse (G(n,p)), RandomRegular (stub matching),
//     PoissonRandom (configuration model with Poisson degrees).
//   - Composition: Copies(k, con) builds k disjoint copies of con.
//
// Guarantees:
//
//   - Same options, seed and constructor order give the same graph.
//   - Constructors never panic; they return wrapped sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed). Option constructors panic on nil arguments.
//   - Vertices are always registered through the ID scheme, so isolated
//     vertices survive even though the text edge-list format cannot express
//     them.
package builder
