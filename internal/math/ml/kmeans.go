package ml

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/cdipaolo/goml/cluster"
	"github.com/rs/zerolog/log"
)

// KMeans clusters points with a fixed number of centroids.
type KMeans struct {
	k          int
	iterations int
	seed       int64
	model      *cluster.KMeans
}

// NewKMeans creates a k-means model.
// The seed drives the centroid initialisation.
func NewKMeans(k int, iterations int, seed int64) *KMeans {
	return &KMeans{
		k:          k,
		iterations: iterations,
		seed:       seed,
	}
}

// Train clusters the data and returns the cluster index of every row.
func (k *KMeans) Train(data [][]float64) ([]int, error) {
	if k.k <= 0 {
		return nil, fmt.Errorf("invalid number of clusters %d", k.k)
	}
	if len(data) < k.k {
		return nil, fmt.Errorf("not enough samples for %d clusters: %d", k.k, len(data))
	}
	k.model = cluster.NewKMeans(k.k, k.iterations, data)
	k.model.Output = io.Discard
	// goml seeds the global source with the clock on creation
	// and draws the k-means++ centroids from it in Learn
	rand.Seed(k.seed)
	if err := k.model.Learn(); err != nil {
		log.Error().
			Err(err).
			Int("k", k.k).
			Int("samples", len(data)).
			Msg("error during training on k-means")
		return nil, fmt.Errorf("could not train: %w", err)
	}
	guesses := k.model.Guesses()
	if len(guesses) != len(data) {
		return nil, fmt.Errorf("could not align guesses with data [ %d | %d ]", len(guesses), len(data))
	}
	result := make([]int, len(guesses))
	copy(result, guesses)
	return result, nil
}
