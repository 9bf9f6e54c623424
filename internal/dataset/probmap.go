package dataset

import (
	"fmt"
	"math"

	"github.com/drakos74/prospectivity/internal/math/ml"
	"github.com/drakos74/prospectivity/internal/raster"
)

// ProbabilityMap predicts every valid cell of the cube, whatever subset the model was trained on.
// Nodata cells of the mask are NaN in the returned band.
func ProbabilityMap(name string, cube *raster.Cube, mask raster.Mask, p ml.Predictor) (*raster.Band, error) {
	full, err := Full(cube, mask)
	if err != nil {
		return nil, fmt.Errorf("could not build inference table: %w", err)
	}
	values := make([]float64, full.Len())
	for i, x := range full.Features {
		values[i] = p.Probability(x)
	}
	b, err := Scatter(cube.Shape, full.Cells, values)
	if err != nil {
		return nil, err
	}
	b.Name = name
	b.Transform = cube.Transform
	return b, nil
}

// Scatter writes the values back to their cells; all other cells are NaN.
func Scatter(shape raster.Shape, cells []int, values []float64) (*raster.Band, error) {
	if len(cells) != len(values) {
		return nil, fmt.Errorf("cells and values do not align [ %d | %d ]", len(cells), len(values))
	}
	b := raster.NewBand("", shape, raster.Transform{}, math.NaN())
	for i, cell := range cells {
		if cell < 0 || cell >= shape.Len() {
			return nil, fmt.Errorf("cell %d out of %v", cell, shape)
		}
		b.Values[cell] = values[i]
	}
	return b, nil
}
