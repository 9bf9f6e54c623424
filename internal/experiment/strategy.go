package experiment

import (
	"fmt"
	"strconv"

	"github.com/drakos74/prospectivity/internal/dataset"
	"github.com/drakos74/prospectivity/internal/partition"
	"github.com/drakos74/prospectivity/internal/raster"
	"github.com/rs/zerolog/log"
)

const (
	Random         = "random"
	Stratified     = "stratified"
	Checkerboard   = "checkerboard"
	ClusterHoldout = "cluster-holdout"
)

// Fold is a single train and test pair of an experiment.
type Fold struct {
	Name  string
	Train *dataset.Table
	Test  *dataset.Table
}

// Strategy splits the inputs into folds.
type Strategy func(cfg Config, in *Inputs) ([]Fold, error)

var strategies = map[string]Strategy{
	Random:         RandomFolds,
	Stratified:     StratifiedFolds,
	Checkerboard:   CheckerboardFolds,
	ClusterHoldout: ClusterFolds,
}

// RandomFolds holds out a random share of the labelled pixels.
func RandomFolds(cfg Config, in *Inputs) ([]Fold, error) {
	table, err := dataset.FromCube(in.Cube, in.Labels)
	if err != nil {
		return nil, err
	}
	train, test, err := partition.RandomSplit(table.Len(), cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return []Fold{{
		Name:  "0",
		Train: table.Subset(train),
		Test:  table.Subset(test),
	}}, nil
}

// StratifiedFolds holds out the same share of positive and background pixels.
func StratifiedFolds(cfg Config, in *Inputs) ([]Fold, error) {
	table, err := dataset.FromCube(in.Cube, in.Labels)
	if err != nil {
		return nil, err
	}
	train, test, err := partition.StratifiedSplit(table.Labels, cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return []Fold{{
		Name:  "0",
		Train: table.Subset(train),
		Test:  table.Subset(test),
	}}, nil
}

// CheckerboardFolds trains on one board class and tests on the other, both ways round.
func CheckerboardFolds(cfg Config, in *Inputs) ([]Fold, error) {
	board, err := partition.Checkerboard(in.Cube.Shape, cfg.Checkerboard.Rows, cfg.Checkerboard.Cols)
	if err != nil {
		return nil, err
	}
	folds := make([]Fold, 0, 2)
	for _, class := range []int{0, 1} {
		trainLabels, err := partition.Half(in.Labels, board, class)
		if err != nil {
			return nil, err
		}
		testLabels, err := partition.Half(in.Labels, board, 1-class)
		if err != nil {
			return nil, err
		}
		train, err := dataset.FromCube(in.Cube, trainLabels)
		if err != nil {
			return nil, err
		}
		test, err := dataset.FromCube(in.Cube, testLabels)
		if err != nil {
			return nil, err
		}
		folds = append(folds, Fold{
			Name:  strconv.Itoa(class),
			Train: train,
			Test:  test,
		})
	}
	return folds, nil
}

// ClusterFolds leaves one occurrence cluster out at a time.
// The model learns from the remaining clusters and is scored on the held-out one,
// with the training clusters removed from the evaluation.
func ClusterFolds(cfg Config, in *Inputs) ([]Fold, error) {
	clusters, err := clusterGrid(cfg, in)
	if err != nil {
		return nil, err
	}
	all := partition.Distinct(clusters)
	if len(all) < 2 {
		return nil, fmt.Errorf("need at least 2 clusters inside the grid, found %d", len(all))
	}
	folds := make([]Fold, 0, len(all))
	for _, id := range all.IDs() {
		heldOut := partition.NewSet(id)
		training := all.Without(id)
		train, err := dataset.FromCube(in.Cube, partition.ClusterLabels(clusters, training))
		if err != nil {
			return nil, err
		}
		testLabels, err := partition.HoldoutLabels(clusters, heldOut, training)
		if err != nil {
			return nil, err
		}
		test, err := dataset.FromCube(in.Cube, testLabels)
		if err != nil {
			return nil, err
		}
		log.Debug().
			Int("cluster", id).
			Ints("training", training.IDs()).
			Int("test", test.Len()).
			Msg("cluster fold")
		folds = append(folds, Fold{
			Name:  strconv.Itoa(id),
			Train: train,
			Test:  test,
		})
	}
	return folds, nil
}

// clusterGrid rasterizes the occurrences with their k-means cluster id.
func clusterGrid(cfg Config, in *Inputs) (raster.Grid, error) {
	ids, err := partition.Clusters(in.Points, cfg.Clusters.K, cfg.Clusters.Iterations, cfg.Seed)
	if err != nil {
		return raster.Grid{}, err
	}
	clusters, err := partition.ClusterGrid(in.Cube.Shape, in.Cube.Transform, in.Points, ids, in.Buffer, in.Mask)
	if err != nil {
		return raster.Grid{}, fmt.Errorf("could not rasterize clusters: %w", err)
	}
	return clusters, nil
}
