package ml

// Metadata describes a fitted model.
type Metadata struct {
	// Samples is the number of rows before resampling.
	Samples int `json:"samples"`
	// Positives and Negatives are counted after resampling.
	Positives int `json:"positives"`
	Negatives int `json:"negatives"`
	// Features holds the feature importance, if the model reports one.
	Features []float64 `json:"features,omitempty"`
}

// Importer is a classifier that reports feature importance.
type Importer interface {
	Importance() []float64
}
