package raster

import (
	"fmt"
	"math"
)

// Band is a single predictor layer.
type Band struct {
	Name      string
	Shape     Shape
	Transform Transform
	Nodata    float64
	Values    []float64
}

// NewBand creates a band filled with the nodata value.
func NewBand(name string, shape Shape, transform Transform, nodata float64) *Band {
	values := make([]float64, shape.Len())
	for i := range values {
		values[i] = nodata
	}
	return &Band{
		Name:      name,
		Shape:     shape,
		Transform: transform,
		Nodata:    nodata,
		Values:    values,
	}
}

// At returns the value of the cell.
func (b *Band) At(r, c int) float64 {
	return b.Values[b.Shape.Index(r, c)]
}

// Valid checks if the cell at the given index holds data.
func (b *Band) Valid(i int) bool {
	v := b.Values[i]
	return !math.IsNaN(v) && v != b.Nodata
}

func (b *Band) check() error {
	if b.Shape.Rows <= 0 || b.Shape.Cols <= 0 {
		return fmt.Errorf("band '%s' has empty shape %v", b.Name, b.Shape)
	}
	if len(b.Values) != b.Shape.Len() {
		return fmt.Errorf("band '%s' has %d values for shape %v: %w", b.Name, len(b.Values), b.Shape, ErrShapeMismatch)
	}
	return nil
}
