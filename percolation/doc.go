// Package percolation runs bond percolation on a core.Graph and answers
// component statistics about the most recent run.
//
// What & Why
//
//   - Bond percolation keeps every edge independently with probability T and
//     studies the connectivity of what remains. Sweeping T across [0,1]
//     exposes the percolation threshold and the cluster-size distribution.
//
// One run (Engine.BondPercolate):
//
//  1. Thin: for each canonical edge, in ascending (U,V) order, draw
//     Sampler.Retain(T); retained edges populate per-vertex neighbour lists.
//  2. Cluster: a fresh dsu.UnionFind over [0,V) receives one Union per
//     retained edge in a single forward pass over vertices and neighbours.
//  3. Index: every vertex is resolved to its root and counted into a dense
//     size table over [0, maxRoot]; entries of non-roots stay 0.
//
// The recount in step 3 is authoritative: the sum of all entries equals V and
// the number of positive entries is the number of components, isolated
// vertices included.
//
// Queries (all O(1) or O(maxRoot), all read-only with respect to the run):
//
//	ComponentCount()               positive entries of the size table
//	ComponentSize(v)               size of v's component
//	LargestComponentSize()         maximum entry
//	SecondLargestComponentSize()   co-largest rule, see below
//	RandomVertex()                 uniform vertex from the engine's stream
//	RandomComponentSize()          ComponentSize(RandomVertex())
//	Distribution()                 size → number of components of that size
//	Snapshot()                     Stats row for tabulation
//
// Second largest: when the maximum size occurs more than once, the second
// largest equals the largest (co-largest components). Otherwise it is the
// greatest size strictly below the maximum, or 0 when there is only one
// component.
//
// Preconditions: statistic queries describe the latest completed run. Before
// the first BondPercolate they return 0 and Snapshot returns ErrNotPercolated.
//
// Concurrency: an Engine owns its random stream and run state and is not safe
// for concurrent use. Distinct engines share nothing.
package percolation
