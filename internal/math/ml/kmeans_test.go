package ml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blobs() [][]float64 {
	var double [][]float64
	for i := -10.0; i < -7; i += 1.0 {
		for j := -10.0; j < -7; j += 1.0 {
			double = append(double, []float64{i, j})
		}
	}
	for i := 7.0; i < 10; i += 1.0 {
		for j := 7.0; j < 10; j += 1.0 {
			double = append(double, []float64{i, j})
		}
	}
	return double
}

func TestKMeans(t *testing.T) {
	data := blobs()
	kmeans := NewKMeans(2, 30, 42)

	guesses, err := kmeans.Train(data)
	require.NoError(t, err)
	require.Len(t, guesses, len(data))

	// each block ends up in a single cluster
	for i := 1; i < 9; i++ {
		assert.Equal(t, guesses[0], guesses[i])
	}
	for i := 10; i < 18; i++ {
		assert.Equal(t, guesses[9], guesses[i])
	}
	assert.NotEqual(t, guesses[0], guesses[9])
}

func TestKMeans_Errors(t *testing.T) {
	_, err := NewKMeans(3, 10, 1).Train([][]float64{{0, 0}})
	assert.Error(t, err)

	_, err = NewKMeans(0, 10, 1).Train(blobs())
	assert.Error(t, err)
}

// four equally dense corners, so more than one split is equally good
func corners() [][]float64 {
	data := make([][]float64, 0)
	for _, c := range [][]float64{{0, 0}, {10, 0}, {0, 10}, {10, 10}} {
		for i := 0; i < 5; i++ {
			data = append(data, []float64{c[0] + float64(i)/10, c[1] - float64(i)/10})
		}
	}
	return data
}

func TestKMeans_Seed(t *testing.T) {
	first, err := NewKMeans(2, 30, 7).Train(corners())
	require.NoError(t, err)

	// the clock-based seed of the library changes every second
	time.Sleep(1100 * time.Millisecond)

	again, err := NewKMeans(2, 30, 7).Train(corners())
	require.NoError(t, err)
	assert.Equal(t, first, again)
}
