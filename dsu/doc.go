// Package dsu provides a flat, index-based disjoint-set (union-find) forest
// sized once for n elements [0, n).
//
// What & Why
//
//   - Elements are ints, parents live in a []int, so a percolation run over
//     V vertices costs two allocations regardless of how many edges it merges.
//   - Find uses path halving: every visited node is re-pointed to its
//     grandparent, which keeps trees shallow without recursion.
//   - Union attaches the root of the smaller set under the root of the larger
//     one and accumulates the size into the surviving root (union by size).
//     On equal sizes the first argument's root survives.
//
// Together these give effectively constant amortized cost per operation
// (inverse Ackermann), so a full clustering pass over E edges is O(V + E·α(V)).
//
// Concurrency: a UnionFind is not safe for concurrent use; Find mutates the
// forest while compressing paths.
//
// Complexity summary:
//
//	New(n)          O(n) time, O(n) space
//	Find(i)         O(α(n)) amortized
//	Union(a, b)     O(α(n)) amortized
//	Size(i)         O(α(n)) amortized
//	Count()         O(1)
package dsu
