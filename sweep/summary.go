package sweep

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Moments is a sample mean and standard deviation.
type Moments struct {
	Mean float64
	Std  float64
}

// Summary aggregates every row observed at one T.
type Summary struct {
	T             float64
	Samples       int
	Retained      Moments
	Largest       Moments
	SecondLargest Moments
	Components    Moments
}

// Summarize groups rows by T (exact match, as produced by Config.Points) and
// returns one Summary per T in ascending order. Std is the unbiased sample
// standard deviation, 0 for a single sample.
func Summarize(rows []Row) []Summary {
	type columns struct {
		retained, largest, second, comps []float64
	}
	byT := make(map[float64]*columns)
	for _, r := range rows {
		c, ok := byT[r.T]
		if !ok {
			c = &columns{}
			byT[r.T] = c
		}
		c.retained = append(c.retained, float64(r.Retained))
		c.largest = append(c.largest, float64(r.Largest))
		c.second = append(c.second, float64(r.SecondLargest))
		c.comps = append(c.comps, float64(r.Components))
	}

	out := make([]Summary, 0, len(byT))
	for T, c := range byT {
		out = append(out, Summary{
			T:             T,
			Samples:       len(c.retained),
			Retained:      moments(c.retained),
			Largest:       moments(c.largest),
			SecondLargest: moments(c.second),
			Components:    moments(c.comps),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].T < out[j].T })

	return out
}

func moments(x []float64) Moments {
	if len(x) < 2 {
		return Moments{Mean: stat.Mean(x, nil)}
	}
	mean, std := stat.MeanStdDev(x, nil)

	return Moments{Mean: mean, Std: std}
}
