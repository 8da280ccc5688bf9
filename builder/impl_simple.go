// SPDX-License-Identifier: MIT
// Package: percolath/builder
//
// impl_simple.go - deterministic topologies: Path, Cycle, Star, Complete, Grid.
//
// Emission order is fixed per constructor so edge-list output and
// first-seen indices are reproducible.

package builder

import (
	"fmt"

	"github.com/katalvlaran/percolath/core"
)

// Path builds the simple path P_n: 0-1-…-(n-1). Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(b *core.GraphBuilder, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		ids, err := addVertices(methodPath, b, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(methodPath, b, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds the simple cycle C_n. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(b *core.GraphBuilder, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(methodCycle, b, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, b, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with center id(0) and leaves id(1..n-1). Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(b *core.GraphBuilder, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		ids, err := addVertices(methodStar, b, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodStar, b, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n. Requires n ≥ 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(b *core.GraphBuilder, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompNodes); err != nil {
			return err
		}
		ids, err := addVertices(methodComplete, b, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(methodComplete, b, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood lattice. Cell (r,c) is named
// id(r*cols+c) so the lattice composes with Copies and custom ID schemes.
// Requires rows, cols ≥ 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(b *core.GraphBuilder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids, err := addVertices(methodGrid, b, cfg, rows*cols)
		if err != nil {
			return err
		}
		// Right neighbour first, then bottom, in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err = addEdge(methodGrid, b, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(methodGrid, b, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Copies builds k disjoint copies of con. Copy i sees an ID scheme prefixed
// with "c<i>:" so no names collide; all copies share the configured RNG.
// Requires k ≥ 1 and a non-nil con.
// Complexity: k × cost(con).
func Copies(k int, con Constructor) Constructor {
	return func(b *core.GraphBuilder, cfg builderConfig) error {
		if err := validateMin(methodCopies, "k", k, minCopies); err != nil {
			return err
		}
		if con == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodCopies, ErrConstructFailed)
		}
		for i := 0; i < k; i++ {
			if err := con(b, cfg.withPrefix(fmt.Sprintf("c%d:", i))); err != nil {
				return fmt.Errorf("%s: copy %d: %w", methodCopies, i, err)
			}
		}

		return nil
	}
}
