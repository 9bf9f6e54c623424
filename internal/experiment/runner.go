package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/drakos74/prospectivity/internal/dataset"
	"github.com/drakos74/prospectivity/internal/math/ml"
	"github.com/drakos74/prospectivity/internal/metrics"
	"github.com/drakos74/prospectivity/internal/raster"
	"github.com/drakos74/prospectivity/internal/storage"
	"github.com/rs/zerolog/log"
)

// Counts summarises a table.
type Counts struct {
	Rows      int `json:"rows"`
	Positives int `json:"positives"`
}

func counts(t *dataset.Table) Counts {
	return Counts{
		Rows:      t.Len(),
		Positives: t.Count(1),
	}
}

// Result is the outcome of a single fold.
type Result struct {
	Run        string       `json:"run"`
	Experiment string       `json:"experiment"`
	Fold       string       `json:"fold"`
	Train      Counts       `json:"train"`
	Test       Counts       `json:"test"`
	ROC        ml.ROC       `json:"roc"`
	Meta       ml.Metadata  `json:"meta"`
	Map        *raster.Band `json:"-"`
}

// Name identifies the fold.
func (r Result) Name() string {
	return fmt.Sprintf("%s-%s", r.Experiment, r.Fold)
}

// Runner fits and scores every fold of the configured experiments.
// Every fold is balanced and fitted the same way, so the experiments stay comparable.
type Runner struct {
	run     string
	cfg     Config
	inputs  *Inputs
	factory ml.Factory
	sampler ml.Sampler
	metrics *metrics.Metrics
	store   storage.Persistence
}

// NewRunner creates a runner with a random forest and the configured undersampling.
func NewRunner(run string, cfg Config, inputs *Inputs) *Runner {
	return &Runner{
		run:     run,
		cfg:     cfg,
		inputs:  inputs,
		factory: ml.ForestFactory(cfg.Trees),
		sampler: cfg.Sampling,
		metrics: metrics.New(),
		store:   storage.NewVoidStorage(),
	}
}

// WithFactory overrides the classifier.
func (r *Runner) WithFactory(factory ml.Factory) *Runner {
	r.factory = factory
	return r
}

// WithMetrics records the outcomes on the given metrics.
func (r *Runner) WithMetrics(m *metrics.Metrics) *Runner {
	r.metrics = m
	return r
}

// WithStorage stores every result.
func (r *Runner) WithStorage(store storage.Persistence) *Runner {
	r.store = store
	return r
}

// Run runs the experiments in order.
// The first failing fold aborts the run; the results gathered so far are returned with the error.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	results := make([]Result, 0)
	for _, name := range r.cfg.Names() {
		folds, err := strategies[name](r.cfg, r.inputs)
		if err != nil {
			r.metrics.Experiment(name, metrics.Failure)
			return results, fmt.Errorf("could not split '%s': %w", name, err)
		}
		for _, fold := range folds {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			result, err := r.Evaluate(name, fold)
			if err != nil {
				r.metrics.Experiment(name, metrics.Failure)
				return results, fmt.Errorf("experiment '%s' fold '%s' failed: %w", name, fold.Name, err)
			}
			r.metrics.Experiment(name, metrics.Success)
			r.metrics.AUC(name, fold.Name, result.ROC.AUC)
			if err := r.store.Store(storage.Key{
				Run:        r.run,
				Experiment: name,
				Label:      fold.Name,
			}, result); err != nil {
				log.Error().Err(err).Str("experiment", name).Str("fold", fold.Name).Msg("could not store result")
			}
			results = append(results, result)
		}
	}
	return results, nil
}

// Evaluate balances and fits on the training table, scores the test table
// and predicts the whole extent of the cube.
func (r *Runner) Evaluate(name string, fold Fold) (Result, error) {
	result := Result{
		Run:        r.run,
		Experiment: name,
		Fold:       fold.Name,
		Train:      counts(fold.Train),
		Test:       counts(fold.Test),
	}

	start := time.Now()
	clf, meta, err := ml.Fit(fold.Train.Features, fold.Train.Labels, r.sampler, r.factory)
	if err != nil {
		return result, fmt.Errorf("could not fit: %w", err)
	}
	r.metrics.Fit(name, time.Since(start))
	result.Meta = meta

	roc, err := ml.Evaluate(clf, fold.Test.Features, fold.Test.Labels)
	result.ROC = roc
	if err != nil {
		return result, fmt.Errorf("could not evaluate: %w", err)
	}

	m, err := dataset.ProbabilityMap(result.Name(), r.inputs.Cube, r.inputs.Mask, clf)
	if err != nil {
		return result, fmt.Errorf("could not predict map: %w", err)
	}
	result.Map = m

	log.Info().
		Str("experiment", name).
		Str("fold", fold.Name).
		Int("train", result.Train.Rows).
		Int("train-positives", result.Train.Positives).
		Int("test", result.Test.Rows).
		Int("test-positives", result.Test.Positives).
		Float64("auc", roc.AUC).
		Dur("fit", time.Since(start)).
		Msg("evaluated fold")
	return result, nil
}
