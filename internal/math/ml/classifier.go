package ml

import "errors"

// ErrEmptyClass is returned when a dataset lacks either positive or negative examples.
var ErrEmptyClass = errors.New("empty class")

// Predictor returns the probability of the positive class for a feature vector.
type Predictor interface {
	Probability(x []float64) float64
}

// Classifier is a binary classifier that can be fitted on a labelled table.
type Classifier interface {
	Predictor
	Fit(x [][]float64, y []int) error
}

// Factory creates a fresh untrained classifier.
type Factory func() Classifier

// PredictorFunc adapts a plain func to the Predictor interface.
type PredictorFunc func(x []float64) float64

// Probability calls the underlying func.
func (f PredictorFunc) Probability(x []float64) float64 {
	return f(x)
}

// Counts returns the number of negative and positive labels.
func Counts(y []int) (neg, pos int) {
	for _, v := range y {
		if v == 1 {
			pos++
		} else {
			neg++
		}
	}
	return neg, pos
}
