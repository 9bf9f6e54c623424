package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// ROC is a receiver operating characteristic curve with its area.
type ROC struct {
	FPR        []float64 `json:"fpr"`
	TPR        []float64 `json:"tpr"`
	Thresholds []float64 `json:"-"`
	AUC        float64   `json:"auc"`
	Positives  int       `json:"positives"`
	Negatives  int       `json:"negatives"`
}

// Evaluate scores every row with the predictor and computes the ROC curve.
func Evaluate(p Predictor, x [][]float64, y []int) (ROC, error) {
	if len(x) != len(y) {
		return ROC{AUC: math.NaN()}, fmt.Errorf("features and labels do not align [ %d | %d ]", len(x), len(y))
	}
	scores := make([]float64, len(x))
	for i, row := range x {
		scores[i] = p.Probability(row)
	}
	return Curve(scores, y)
}

// Curve computes the ROC curve for the given scores and labels.
// Points are ordered by increasing false positive rate.
// If either class is missing the AUC is NaN and ErrEmptyClass is returned.
func Curve(scores []float64, y []int) (ROC, error) {
	neg, pos := Counts(y)
	roc := ROC{
		AUC:       math.NaN(),
		Positives: pos,
		Negatives: neg,
	}
	if len(scores) != len(y) {
		return roc, fmt.Errorf("scores and labels do not align [ %d | %d ]", len(scores), len(y))
	}
	if neg == 0 || pos == 0 {
		return roc, fmt.Errorf("cannot score %d positives and %d negatives: %w", pos, neg, ErrEmptyClass)
	}

	s := make([]float64, len(scores))
	copy(s, scores)
	classes := make([]bool, len(y))
	for i, v := range y {
		classes[i] = v == 1
	}
	stat.SortWeightedLabeled(s, classes, nil)

	roc.TPR, roc.FPR, roc.Thresholds = stat.ROC(nil, s, classes, nil)
	roc.AUC = integrate.Trapezoidal(roc.FPR, roc.TPR)
	return roc, nil
}
