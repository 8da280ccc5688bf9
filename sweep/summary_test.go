package sweep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolath/percolation"
	"github.com/katalvlaran/percolath/sweep"
)

func row(T float64, largest, comps int) sweep.Row {
	return sweep.Row{Stats: percolation.Stats{T: T, Largest: largest, Components: comps, Retained: largest}}
}

func TestSummarize(t *testing.T) {
	rows := []sweep.Row{
		row(0.5, 2, 4),
		row(0.1, 1, 6),
		row(0.5, 4, 2),
		row(0.5, 6, 1),
	}
	sums := sweep.Summarize(rows)
	require.Len(t, sums, 2)

	assert.Equal(t, 0.1, sums[0].T)
	assert.Equal(t, 1, sums[0].Samples)
	assert.Equal(t, sweep.Moments{Mean: 1, Std: 0}, sums[0].Largest)

	assert.Equal(t, 0.5, sums[1].T)
	assert.Equal(t, 3, sums[1].Samples)
	assert.InDelta(t, 4.0, sums[1].Largest.Mean, 1e-12)
	assert.InDelta(t, 2.0, sums[1].Largest.Std, 1e-12)
	assert.InDelta(t, 7.0/3, sums[1].Components.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(7.0/3), sums[1].Components.Std, 1e-12)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, sweep.Summarize(nil))
}
