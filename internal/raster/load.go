package raster

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Load reads the given ASCII grid files and stacks them into a cube.
func Load(paths ...string) (*Cube, error) {
	bands := make([]*Band, 0, len(paths))
	for _, path := range paths {
		b, err := ReadASCIIFile(path)
		if err != nil {
			return nil, err
		}
		summary := Summarize(b)
		log.Info().
			Str("band", b.Name).
			Str("shape", b.Shape.String()).
			Str("transform", b.Transform.String()).
			Int("valid", summary.Count).
			Float64("min", summary.Min).
			Float64("max", summary.Max).
			Float64("mean", summary.Mean).
			Float64("std", summary.StdDev()).
			Msg("loaded band")
		bands = append(bands, b)
	}
	cube, err := NewCube(bands...)
	if err != nil {
		return nil, fmt.Errorf("could not stack bands: %w", err)
	}
	return cube, nil
}
