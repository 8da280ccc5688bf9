package core

import "sort"

// newEdgeStore allocates an empty, unfrozen EdgeStore.
func newEdgeStore() *EdgeStore {
	return &EdgeStore{set: make(map[Edge]struct{})}
}

// insert adds the canonical form of {a,b}. It reports whether the edge was
// new; duplicates in either orientation and self-loops are no-ops.
// Complexity: O(1) amortized.
func (s *EdgeStore) insert(a, b int) bool {
	if a == b || s.frozen {
		return false
	}
	e := NewEdge(a, b)
	if _, dup := s.set[e]; dup {
		return false
	}
	s.set[e] = struct{}{}
	s.edges = append(s.edges, e)

	return true
}

// freeze sorts the edges by (U,V) and forbids further inserts.
// Complexity: O(E log E).
func (s *EdgeStore) freeze() {
	sort.Slice(s.edges, func(i, j int) bool {
		if s.edges[i].U != s.edges[j].U {
			return s.edges[i].U < s.edges[j].U
		}

		return s.edges[i].V < s.edges[j].V
	})
	s.frozen = true
}

// Len reports the number of distinct edges.
func (s *EdgeStore) Len() int {
	if s == nil {
		return 0
	}

	return len(s.edges)
}

// Has reports whether the unordered pair {a,b} is stored.
func (s *EdgeStore) Has(a, b int) bool {
	if s == nil || a == b {
		return false
	}
	_, ok := s.set[NewEdge(a, b)]

	return ok
}

// Each calls fn for every edge in ascending (U,V) order.
func (s *EdgeStore) Each(fn func(Edge)) {
	if s == nil {
		return
	}
	for _, e := range s.edges {
		fn(e)
	}
}

// Edges returns a copy of the stored edges in ascending (U,V) order.
func (s *EdgeStore) Edges() []Edge {
	if s == nil {
		return nil
	}
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}
