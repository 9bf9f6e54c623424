package partition

import (
	"fmt"
	"sort"

	"github.com/drakos74/prospectivity/internal/math/ml"
	"github.com/drakos74/prospectivity/internal/raster"
	"github.com/drakos74/prospectivity/internal/vector"
	"github.com/rs/zerolog/log"
)

// Background is the cluster grid value of cells away from any occurrence.
const Background = 0

// Clusters groups the occurrences by their coordinates with k-means.
// The returned ids run from 1 to k and are numbered by first appearance in the input,
// so identical inputs and seed give identical ids.
func Clusters(points []vector.Point, k, iterations int, seed int64) ([]int, error) {
	guesses, err := ml.NewKMeans(k, iterations, seed).Train(vector.Coordinates(points))
	if err != nil {
		return nil, fmt.Errorf("could not cluster %d occurrences: %w", len(points), err)
	}
	ids := make(map[int]int)
	clusters := make([]int, len(guesses))
	for i, g := range guesses {
		if _, ok := ids[g]; !ok {
			ids[g] = len(ids) + 1
		}
		clusters[i] = ids[g]
	}
	log.Debug().Int("k", k).Int("found", len(ids)).Int("points", len(points)).Msg("clustered occurrences")
	return clusters, nil
}

// ClusterGrid rasterizes the occurrences with their cluster id as burn value.
// Cells away from any occurrence hold Background, nodata cells of the mask raster.Nodata.
func ClusterGrid(shape raster.Shape, transform raster.Transform, points []vector.Point, ids []int, buffer float64, mask raster.Mask) (raster.Grid, error) {
	if len(points) != len(ids) {
		return raster.Grid{}, fmt.Errorf("points and cluster ids do not align [ %d | %d ]", len(points), len(ids))
	}
	for _, id := range ids {
		if id <= Background {
			return raster.Grid{}, fmt.Errorf("invalid cluster id %d", id)
		}
	}
	features := vector.Features(points, func(i int) int {
		return ids[i]
	})
	return raster.Rasterize(shape, transform, features, buffer, Background).Masked(mask)
}

// Set is a set of cluster ids.
type Set map[int]bool

// NewSet creates a set from the given ids.
func NewSet(ids ...int) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// IDs returns the sorted ids of the set.
func (s Set) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Without returns a copy of the set without the given ids.
func (s Set) Without(ids ...int) Set {
	n := make(Set, len(s))
	for id := range s {
		n[id] = true
	}
	for _, id := range ids {
		delete(n, id)
	}
	return n
}

// Distinct returns the cluster ids found in the grid.
func Distinct(clusters raster.Grid) Set {
	s := make(Set)
	for _, v := range clusters.Values {
		if v != raster.Nodata && v != Background {
			s[v] = true
		}
	}
	return s
}

// ClusterLabels labels the cells of the positive clusters as 1 and every other valid cell as 0.
func ClusterLabels(clusters raster.Grid, positive Set) raster.Grid {
	return clusters.Map(func(id int) int {
		if positive[id] {
			return 1
		}
		return 0
	})
}

// HoldoutLabels builds the evaluation labels for a held-out set of clusters.
// Held-out cells are 1, cells of the training clusters are dropped as raster.Nodata,
// and every other valid cell is 0. The two sets must not overlap.
func HoldoutLabels(clusters raster.Grid, heldOut, training Set) (raster.Grid, error) {
	for id := range heldOut {
		if training[id] {
			return raster.Grid{}, fmt.Errorf("cluster %d is both held out and used for training", id)
		}
	}
	return clusters.Map(func(id int) int {
		switch {
		case training[id]:
			return raster.Nodata
		case heldOut[id]:
			return 1
		default:
			return 0
		}
	}), nil
}
