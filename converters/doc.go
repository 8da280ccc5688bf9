// Package converters provides two-way adapters between core.Graph and
// gonum/graph.
//
// Vertex index i of a core.Graph becomes gonum node ID int64(i), so results
// computed on either side (components, paths) can be compared index for
// index. Names do not survive the trip into gonum; FromGonum names vertices
// by their decimal node ID.
package converters
