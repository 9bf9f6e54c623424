package ml

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Sampler rebalances a labelled table before fitting.
type Sampler interface {
	Resample(x [][]float64, y []int) ([][]float64, []int, error)
}

// NoSampling passes the table through.
type NoSampling struct{}

// Resample returns the input as is.
func (NoSampling) Resample(x [][]float64, y []int) ([][]float64, []int, error) {
	return x, y, nil
}

// Undersampler randomly drops rows of the majority class
// until it holds at most Ratio times the rows of the minority class.
// Every call draws from a fresh source seeded with Seed.
type Undersampler struct {
	Ratio float64 `json:"ratio"`
	Seed  int64   `json:"seed"`
}

// Resample returns a balanced copy of the table, keeping the original row order.
func (u Undersampler) Resample(x [][]float64, y []int) ([][]float64, []int, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("features and labels do not align [ %d | %d ]", len(x), len(y))
	}
	neg, pos := Counts(y)
	if neg == 0 || pos == 0 {
		return nil, nil, fmt.Errorf("cannot balance %d positives and %d negatives: %w", pos, neg, ErrEmptyClass)
	}
	ratio := u.Ratio
	if ratio <= 0 {
		ratio = 1
	}

	majority := 0
	minorityCount, majorityCount := pos, neg
	if pos > neg {
		majority = 1
		minorityCount, majorityCount = neg, pos
	}
	keep := int(math.Ceil(ratio * float64(minorityCount)))
	if keep >= majorityCount {
		return x, y, nil
	}

	majorityRows := make([]int, 0, majorityCount)
	rows := make([]int, 0, minorityCount+keep)
	for i, v := range y {
		if label(v) == majority {
			majorityRows = append(majorityRows, i)
		} else {
			rows = append(rows, i)
		}
	}
	rnd := rand.New(rand.NewSource(u.Seed))
	for _, j := range rnd.Perm(len(majorityRows))[:keep] {
		rows = append(rows, majorityRows[j])
	}
	sort.Ints(rows)

	xx := make([][]float64, len(rows))
	yy := make([]int, len(rows))
	for i, r := range rows {
		xx[i] = x[r]
		yy[i] = y[r]
	}
	return xx, yy, nil
}

func label(v int) int {
	if v == 1 {
		return 1
	}
	return 0
}
