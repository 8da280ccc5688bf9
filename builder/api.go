// SPDX-License-Identifier: MIT
// Package: percolath/builder
//
// api.go - public entry point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates a GraphBuilder,
//     resolves cfg, runs cons in order and freezes the graph.
//   - Factories are implemented in impl_*.go.
//   - Same options/seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/percolath/core"
)

// Constructor adds vertices and edges to b using the resolved builderConfig.
// Constructors validate their parameters before touching b and return
// wrapped sentinel errors; they never panic.
type Constructor func(b *core.GraphBuilder, cfg builderConfig) error

// BuildGraph resolves bopts, applies every constructor in order to a fresh
// core.GraphBuilder and returns the frozen graph. The first constructor error
// is wrapped as "BuildGraph: %w" and returned; no partial graph escapes.
//
// Complexity: O(len(bopts)) + Σ cost of cons + O(E log E) for the final freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewGraphBuilder()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build()
}
