package experiment

import (
	"fmt"

	"github.com/drakos74/prospectivity/internal/math/ml"
	"github.com/drakos74/prospectivity/internal/vector"
)

// Config defines the inputs and the experiments to run.
type Config struct {
	// Rasters are the ascii grid files of the predictor bands.
	Rasters []string `json:"rasters"`
	// Occurrences is the delimited file of known deposits.
	Occurrences string         `json:"occurrences"`
	Columns     vector.Columns `json:"columns"`
	// Filter optionally keeps only the occurrences with a matching attribute.
	Filter *Filter `json:"filter,omitempty"`
	// Buffer is the radius, in map units, burned around every occurrence.
	Buffer float64 `json:"buffer"`
	// Trees is the size of the random forest.
	Trees int `json:"trees"`
	// Sampling balances the classes before every fit.
	Sampling ml.Undersampler `json:"sampling"`
	// TestFraction is the share of pixels held out by the non-spatial splits.
	TestFraction float64    `json:"test_fraction"`
	Checkerboard Block      `json:"checkerboard"`
	Clusters     Clustering `json:"clusters"`
	Seed         int64      `json:"seed"`
	// Experiments lists the experiments to run, all of them if empty.
	Experiments []string `json:"experiments,omitempty"`
}

// Filter selects occurrences by attribute.
type Filter struct {
	Attribute string   `json:"attribute"`
	Values    []string `json:"values"`
}

// Block is the checkerboard block size in cells.
type Block struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Clustering configures the k-means grouping of occurrences.
type Clustering struct {
	K          int `json:"k"`
	Iterations int `json:"iterations"`
}

// DefaultConfig returns the settings used when a field is left empty.
func DefaultConfig() Config {
	return Config{
		Columns: vector.DefaultColumns(),
		Trees:   100,
		Sampling: ml.Undersampler{
			Ratio: 1,
		},
		TestFraction: 0.3,
		Checkerboard: Block{Rows: 10, Cols: 10},
		Clusters: Clustering{
			K:          5,
			Iterations: 100,
		},
		Seed: 42,
	}
}

// Names returns the experiments to run in order.
func (c Config) Names() []string {
	if len(c.Experiments) == 0 {
		return []string{Random, Stratified, Checkerboard, ClusterHoldout}
	}
	return c.Experiments
}

// Validate checks the config for values that cannot work.
func (c Config) Validate() error {
	if c.Trees <= 0 {
		return fmt.Errorf("invalid number of trees %d", c.Trees)
	}
	if c.Buffer < 0 {
		return fmt.Errorf("invalid buffer %g", c.Buffer)
	}
	for _, name := range c.Names() {
		if _, ok := strategies[name]; !ok {
			return fmt.Errorf("unknown experiment '%s'", name)
		}
		switch name {
		case Random, Stratified:
			if c.TestFraction <= 0 || c.TestFraction >= 1 {
				return fmt.Errorf("invalid test fraction %g", c.TestFraction)
			}
		case Checkerboard:
			if c.Checkerboard.Rows <= 0 || c.Checkerboard.Cols <= 0 {
				return fmt.Errorf("invalid checkerboard block %dx%d", c.Checkerboard.Rows, c.Checkerboard.Cols)
			}
		case ClusterHoldout:
			if c.Clusters.K < 2 {
				return fmt.Errorf("cluster holdout needs at least 2 clusters, got %d", c.Clusters.K)
			}
		}
	}
	return nil
}
