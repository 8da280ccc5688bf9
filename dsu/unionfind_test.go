package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolath/dsu"
)

// TestNew_Singletons verifies the initial forest.
func TestNew_Singletons(t *testing.T) {
	uf := dsu.New(5)

	assert.Equal(t, 5, uf.Len())
	assert.Equal(t, 5, uf.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, uf.Find(i))
		assert.Equal(t, 1, uf.Size(i))
	}

	empty := dsu.New(-3)
	assert.Zero(t, empty.Len())
	assert.Zero(t, empty.Count())
}

// TestUnion_BySize verifies that the larger set's root survives.
func TestUnion_BySize(t *testing.T) {
	uf := dsu.New(6)

	// Build {0,1,2} rooted somewhere inside.
	_, merged := uf.Union(0, 1)
	require.True(t, merged)
	big, merged := uf.Union(1, 2)
	require.True(t, merged)
	assert.Equal(t, 3, uf.Size(2))

	// Merging a singleton from the left must keep the big root.
	root, merged := uf.Union(5, 0)
	require.True(t, merged)
	assert.Equal(t, big, root)
	assert.Equal(t, 4, uf.Size(5))

	// Tie: first argument's root survives.
	root, merged = uf.Union(3, 4)
	require.True(t, merged)
	assert.Equal(t, 3, root)

	// Redundant union is a no-op.
	root, merged = uf.Union(4, 3)
	assert.False(t, merged)
	assert.Equal(t, 3, root)
	assert.Equal(t, 2, uf.Count())
}

// TestFind_SingleRoot merges every element into one set and checks that all
// of them resolve to the same root.
func TestFind_SingleRoot(t *testing.T) {
	const n = 64
	uf := dsu.New(n)
	for i := 1; i < n; i++ {
		uf.Union(0, i)
	}

	root := uf.Find(n - 1)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, uf.Find(i))
	}
	assert.Equal(t, n, uf.Size(root))
	assert.Equal(t, 1, uf.Count())
}

// TestUnion_MatchesNaiveLabels cross-checks random unions against a naive
// relabelling oracle.
func TestUnion_MatchesNaiveLabels(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	uf := dsu.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for k := 0; k < 150; k++ {
		a, b := r.Intn(n), r.Intn(n)
		uf.Union(a, b)
		la, lb := label[a], label[b]
		if la != lb {
			for i := range label {
				if label[i] == lb {
					label[i] = la
				}
			}
		}
	}

	sizes := make(map[int]int)
	for _, l := range label {
		sizes[l]++
	}
	assert.Equal(t, len(sizes), uf.Count())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j += 17 {
			assert.Equal(t, label[i] == label[j], uf.Connected(i, j), "pair (%d,%d)", i, j)
		}
		assert.Equal(t, sizes[label[i]], uf.Size(i))
	}
}
