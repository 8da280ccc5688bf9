// SPDX-License-Identifier: MIT
// Package: percolath/core
//
// loader.go — edge-list ingestion.
//
// Contract:
//   - A comment is a line whose first whitespace-delimited token is exactly "#".
//   - Otherwise the first two tokens name the endpoints; further tokens are ignored.
//   - Lines with fewer than two tokens are no-ops.
//   - Any open/read failure is fatal: the caller gets ErrSourceUnavailable and no Graph.
//
// Complexity:
//   - Time: O(L + E log E) for L input lines and E distinct edges.
//   - Space: O(V + E).

package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	methodLoadFile     = "LoadFile"
	methodReadEdgeList = "ReadEdgeList"

	commentToken = "#"
)

// LoadFile opens path and reads it as an edge list.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w: %w", methodLoadFile, path, ErrSourceUnavailable, err)
	}
	defer f.Close()

	g, err := ReadEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", methodLoadFile, path, err)
	}

	return g, nil
}

// ReadEdgeList consumes r line by line and returns the resulting Graph.
// Line length is unbounded. A read error aborts the load; the partially
// filled state is discarded.
func ReadEdgeList(r io.Reader) (*Graph, error) {
	if r == nil {
		return nil, fmt.Errorf("%s: nil reader: %w", methodReadEdgeList, ErrSourceUnavailable)
	}

	b := NewGraphBuilder()
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if name1, name2, ok := parseLine(line); ok {
			// Names come from strings.Fields so they are never empty; the error
			// branch of AddEdge is unreachable here.
			_, _ = b.AddEdge(name1, name2)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodReadEdgeList, ErrSourceUnavailable, err)
		}
	}

	return b.Build()
}

// parseLine extracts the two endpoint names of a data line.
// It returns ok=false for comments and lines with fewer than two tokens.
func parseLine(line string) (string, string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] == commentToken {
		return "", "", false
	}
	if len(fields) < 2 {
		return "", "", false
	}

	return fields[0], fields[1], true
}
