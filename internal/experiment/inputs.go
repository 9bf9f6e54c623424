package experiment

import (
	"fmt"

	"github.com/drakos74/prospectivity/internal/raster"
	"github.com/drakos74/prospectivity/internal/vector"
	"github.com/rs/zerolog/log"
)

// Inputs is the data shared by all experiments.
type Inputs struct {
	Cube   *raster.Cube
	Mask   raster.Mask
	Labels raster.Grid
	Points []vector.Point
	Buffer float64
}

// Prepare loads the rasters and occurrences of the config.
func Prepare(cfg Config) (*Inputs, error) {
	cube, err := raster.Load(cfg.Rasters...)
	if err != nil {
		return nil, fmt.Errorf("could not load rasters: %w", err)
	}
	points, err := vector.ReadCSVFile(cfg.Occurrences, cfg.Columns)
	if err != nil {
		return nil, fmt.Errorf("could not load occurrences: %w", err)
	}
	if cfg.Filter != nil {
		points = vector.Filter(points, cfg.Filter.Attribute, cfg.Filter.Values...)
	}
	return NewInputs(cube, points, cfg.Buffer)
}

// NewInputs builds the nodata mask and the label grid of the occurrences.
func NewInputs(cube *raster.Cube, points []vector.Point, buffer float64) (*Inputs, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no occurrences")
	}
	mask := cube.Mask()
	features := vector.Features(points, vector.Constant(1))
	labels, err := raster.Rasterize(cube.Shape, cube.Transform, features, buffer, 0).Masked(mask)
	if err != nil {
		return nil, fmt.Errorf("could not build labels: %w", err)
	}
	log.Info().
		Int("occurrences", len(points)).
		Int("positive", labels.Count(1)).
		Int("background", labels.Count(0)).
		Int("nodata", labels.Count(raster.Nodata)).
		Msg("built labels")
	return &Inputs{
		Cube:   cube,
		Mask:   mask,
		Labels: labels,
		Points: points,
		Buffer: buffer,
	}, nil
}
