package dsu

// UnionFind is a disjoint-set forest over [0, n).
type UnionFind struct {
	parent []int // parent[i] == i for roots
	size   []int // meaningful for roots only
	count  int   // number of disjoint sets
}

// New returns a forest of n singleton sets. n < 0 is treated as 0.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Len reports the number of elements.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count reports the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the set containing i, halving the path on the way.
// i must lie in [0, Len()).
func (uf *UnionFind) Find(i int) int {
	for uf.parent[i] != i {
		// Path halving: point i at its grandparent, then step there.
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}

	return i
}

// Union merges the sets containing a and b. It returns the surviving root and
// whether a merge happened (false when a and b already share a root).
func (uf *UnionFind) Union(a, b int) (int, bool) {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return ra, false
	}
	// Smaller set hangs under the larger; ties keep a's root.
	if uf.size[rb] > uf.size[ra] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.count--

	return ra, true
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Size returns the size of the set containing i.
func (uf *UnionFind) Size(i int) int {
	return uf.size[uf.Find(i)]
}
