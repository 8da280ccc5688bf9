package core

// newRegistry allocates an empty Registry.
func newRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// resolve returns the index of name, assigning the next free index on
// first sight. Indices are handed out in first-seen order with no gaps.
// Complexity: O(1) amortized.
func (r *Registry) resolve(name string) int {
	if i, ok := r.index[name]; ok {
		return i
	}
	i := len(r.names)
	r.index[name] = i
	r.names = append(r.names, name)

	return i
}

// Len reports the number of registered vertices.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.names)
}

// Index returns the index assigned to name.
func (r *Registry) Index(name string) (int, bool) {
	if r == nil {
		return 0, false
	}
	i, ok := r.index[name]

	return i, ok
}

// Name returns the name registered at index i.
func (r *Registry) Name(i int) (string, bool) {
	if r == nil || i < 0 || i >= len(r.names) {
		return "", false
	}

	return r.names[i], true
}

// Names returns a copy of all names ordered by index.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}
