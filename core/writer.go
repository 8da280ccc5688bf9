// SPDX-License-Identifier: MIT
// Package: percolath/core
//
// writer.go — edge-list emission, the inverse of ReadEdgeList.
//
// Contract:
//   - One header comment line, then one "name name" line per canonical edge
//     in ascending (U,V) order.
//   - Isolated vertices have no line and are lost on a round-trip.

package core

import (
	"bufio"
	"fmt"
	"io"
)

const (
	methodWriteEdgeList = "WriteEdgeList"

	edgeListHeader = "# SourceVertex TargetVertex"
)

// WriteEdgeList writes g to w in the format ReadEdgeList accepts.
// A nil Graph writes the header only.
// Complexity: O(E).
func WriteEdgeList(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, edgeListHeader); err != nil {
		return fmt.Errorf("%s: %w", methodWriteEdgeList, err)
	}

	var werr error
	g.EachEdge(func(e Edge) {
		if werr != nil {
			return
		}
		u, _ := g.Name(e.U)
		v, _ := g.Name(e.V)
		_, werr = fmt.Fprintf(bw, "%s %s\n", u, v)
	})
	if werr != nil {
		return fmt.Errorf("%s: %w", methodWriteEdgeList, werr)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteEdgeList, err)
	}

	return nil
}
