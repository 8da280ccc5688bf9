package gridgraph

import "sort"

// Clusters finds all groups of open sites connected under gg.Conn.
// Each cluster is a slice of row-major cell indices in BFS order; clusters
// appear in the order of their first cell in a row-major scan.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Clusters() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsOpen(x, y) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.NeighborOffsets() {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsOpen(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// ClusterSizes returns the cluster sizes in non-increasing order.
func (gg *GridGraph) ClusterSizes() []int {
	comps := gg.Clusters()
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}
