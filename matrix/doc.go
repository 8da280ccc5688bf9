// Package matrix offers dense matrix views of a core.Graph and the
// percolation-threshold estimates that follow from them.
//
// The matrix package provides:
//
//   - Adjacency: the symmetric 0/1 adjacency matrix as a gonum *mat.SymDense.
//   - SpectralRadius: the largest adjacency eigenvalue λ_max.
//   - Thresholds: the critical retention probability estimated two ways,
//     1/λ_max (message passing) and ⟨k⟩/(⟨k²⟩−⟨k⟩) (Molloy–Reed, configuration model).
//
// Dense matrices cost O(V²) memory, so Adjacency refuses graphs with more than
// MaxDenseVertices vertices; the degree-based estimate has no such limit.
package matrix
