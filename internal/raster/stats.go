package raster

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is a set of statistical properties of the valid cells of a band.
type Summary struct {
	Count    int
	Min      float64
	Max      float64
	Mean     float64
	Variance float64
}

// StdDev is the standard deviation of the valid cells.
func (s Summary) StdDev() float64 {
	return math.Sqrt(s.Variance)
}

// Summarize computes the summary over the valid cells of the band.
// An all-nodata band yields NaN statistics.
func Summarize(b *Band) Summary {
	values := make([]float64, 0, len(b.Values))
	for i, v := range b.Values {
		if b.Valid(i) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return Summary{
			Min:      nan,
			Max:      nan,
			Mean:     nan,
			Variance: nan,
		}
	}
	mean, variance := stat.MeanVariance(values, nil)
	if len(values) == 1 {
		variance = 0
	}
	return Summary{
		Count:    len(values),
		Min:      floats.Min(values),
		Max:      floats.Max(values),
		Mean:     mean,
		Variance: variance,
	}
}
