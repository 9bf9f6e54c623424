package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type threshold struct {
	fitted int
	cut    float64
}

func (th *threshold) Fit(x [][]float64, y []int) error {
	th.fitted = len(x)
	th.cut = math.Inf(1)
	for i, row := range x {
		if y[i] == 1 && row[0] < th.cut {
			th.cut = row[0]
		}
	}
	return nil
}

func (th *threshold) Probability(x []float64) float64 {
	if x[0] >= th.cut {
		return 1
	}
	return 0
}

func TestFit(t *testing.T) {
	x, y := table(50, 5)
	var created []*threshold
	factory := func() Classifier {
		th := &threshold{}
		created = append(created, th)
		return th
	}

	clf, meta, err := Fit(x, y, Undersampler{Ratio: 1, Seed: 3}, factory)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, 10, created[0].fitted)
	assert.Equal(t, 55, meta.Samples)
	assert.Equal(t, 5, meta.Positives)
	assert.Equal(t, 5, meta.Negatives)
	assert.Equal(t, 1.0, clf.Probability([]float64{54}))

	// every call gets its own classifier
	_, _, err = Fit(x, y, nil, factory)
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, 55, created[1].fitted)
}

func TestFit_EmptyClass(t *testing.T) {
	x, y := table(10, 0)
	_, _, err := Fit(x, y, NoSampling{}, func() Classifier { return &threshold{} })
	assert.ErrorIs(t, err, ErrEmptyClass)
}

func TestRandomForest(t *testing.T) {
	var x [][]float64
	var y []int
	for i := 0; i < 200; i++ {
		v := float64(i) / 200
		x = append(x, []float64{v, 1 - v})
		if v > 0.5 {
			y = append(y, 1)
		} else {
			y = append(y, 0)
		}
	}

	clf, meta, err := Fit(x, y, Undersampler{Ratio: 1, Seed: 1}, ForestFactory(50))
	require.NoError(t, err)
	assert.Len(t, meta.Features, 2)

	assert.Greater(t, clf.Probability([]float64{0.95, 0.05}), 0.5)
	assert.Less(t, clf.Probability([]float64{0.05, 0.95}), 0.5)

	roc, err := Evaluate(clf, x, y)
	require.NoError(t, err)
	assert.Greater(t, roc.AUC, 0.9)
}

func TestRandomForest_Untrained(t *testing.T) {
	rf := NewForest(10)
	assert.Equal(t, 0.0, rf.Probability([]float64{1}))
	assert.Nil(t, rf.Importance())
	assert.ErrorIs(t, rf.Fit([][]float64{{1}}, []int{1}), ErrEmptyClass)
}
