package ml

import (
	"fmt"
)

// Fit balances the table with the sampler and trains a fresh classifier on the result.
func Fit(x [][]float64, y []int, sampler Sampler, factory Factory) (Classifier, Metadata, error) {
	meta := Metadata{Samples: len(x)}
	if sampler == nil {
		sampler = NoSampling{}
	}
	xx, yy, err := sampler.Resample(x, y)
	if err != nil {
		return nil, meta, fmt.Errorf("could not balance classes: %w", err)
	}
	meta.Negatives, meta.Positives = Counts(yy)
	if meta.Negatives == 0 || meta.Positives == 0 {
		return nil, meta, fmt.Errorf("cannot fit on %d positives and %d negatives: %w", meta.Positives, meta.Negatives, ErrEmptyClass)
	}
	clf := factory()
	if err := clf.Fit(xx, yy); err != nil {
		return nil, meta, fmt.Errorf("could not fit classifier: %w", err)
	}
	if imp, ok := clf.(Importer); ok {
		meta.Features = imp.Importance()
	}
	return clf, meta, nil
}
