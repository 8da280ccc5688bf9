package percolation

import "github.com/katalvlaran/percolath/dsu"

// clusterIndex is the dense root → component size table of one run.
// sizes[r] > 0 iff r is a root; len(sizes) == maxRoot+1.
type clusterIndex struct {
	sizes []int
}

// newClusterIndex recounts component sizes from the final forest. The recount,
// not the sizes accumulated during Union, is what queries read.
// Complexity: O(V·α(V)).
func newClusterIndex(uf *dsu.UnionFind) clusterIndex {
	n := uf.Len()
	maxRoot := -1
	for i := 0; i < n; i++ {
		if r := uf.Find(i); r > maxRoot {
			maxRoot = r
		}
	}
	sizes := make([]int, maxRoot+1)
	for i := 0; i < n; i++ {
		sizes[uf.Find(i)]++
	}

	return clusterIndex{sizes: sizes}
}

// sizeOf returns the size stored for root r.
func (c clusterIndex) sizeOf(r int) int {
	if r < 0 || r >= len(c.sizes) {
		return 0
	}

	return c.sizes[r]
}

// count returns the number of components.
func (c clusterIndex) count() int {
	n := 0
	for _, s := range c.sizes {
		if s > 0 {
			n++
		}
	}

	return n
}

// total returns the number of vertices covered; equals V by construction.
func (c clusterIndex) total() int {
	sum := 0
	for _, s := range c.sizes {
		sum += s
	}

	return sum
}

// largest returns the maximum component size, 0 for an empty graph.
func (c clusterIndex) largest() int {
	best := 0
	for _, s := range c.sizes {
		if s > best {
			best = s
		}
	}

	return best
}

// secondLargest applies the co-largest rule: a repeated maximum is returned as
// is, otherwise the greatest size strictly below the maximum (0 if none).
func (c clusterIndex) secondLargest() int {
	top := c.largest()
	if top == 0 {
		return 0
	}
	seen := 0
	for _, s := range c.sizes {
		if s == top {
			seen++
		}
	}
	if seen > 1 {
		return top
	}
	second := 0
	for _, s := range c.sizes {
		if s >= second && s < top {
			second = s
		}
	}

	return second
}

// distribution maps component size → number of components with that size.
func (c clusterIndex) distribution() map[int]int {
	out := make(map[int]int)
	for _, s := range c.sizes {
		if s > 0 {
			out[s]++
		}
	}

	return out
}
