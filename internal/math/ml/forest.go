package ml

import (
	"fmt"

	"github.com/rs/zerolog/log"

	randomforest "github.com/malaschitz/randomForest"
)

// RandomForest is a binary random forest classifier.
type RandomForest struct {
	trees  int
	forest *randomforest.Forest
}

// NewForest creates a forest with the given number of trees.
func NewForest(n int) *RandomForest {
	return &RandomForest{
		trees: n,
	}
}

// ForestFactory creates forests with the given number of trees.
func ForestFactory(n int) Factory {
	return func() Classifier {
		return NewForest(n)
	}
}

// Fit trains the forest on the given table.
func (rf *RandomForest) Fit(xData [][]float64, yData []int) error {
	if len(xData) != len(yData) {
		return fmt.Errorf("features and labels do not align [ %d | %d ]", len(xData), len(yData))
	}
	neg, pos := Counts(yData)
	if neg == 0 || pos == 0 {
		return fmt.Errorf("cannot fit on %d positives and %d negatives: %w", pos, neg, ErrEmptyClass)
	}
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xData, Class: yData}
	forest.Train(rf.trees)
	rf.forest = forest
	log.Debug().
		Int("trees", rf.trees).
		Int("samples", len(xData)).
		Int("positives", pos).
		Msg("trained forest")
	return nil
}

// Probability returns the share of votes for the positive class.
func (rf *RandomForest) Probability(x []float64) float64 {
	if rf.forest == nil {
		return 0
	}
	votes := rf.forest.Vote(x)
	if len(votes) < 2 {
		return 0
	}
	var sum float64
	for _, v := range votes {
		sum += v
	}
	if sum == 0 {
		return 0
	}
	return votes[1] / sum
}

// Importance returns the feature importance of the trained forest.
func (rf *RandomForest) Importance() []float64 {
	if rf.forest == nil {
		return nil
	}
	return rf.forest.FeatureImportance
}
