package raster

import (
	"fmt"
	"math"
)

var nan = math.NaN()

// Cube is a stack of bands sharing the same grid geometry.
type Cube struct {
	Shape     Shape
	Transform Transform
	Bands     []*Band
}

// NewCube stacks the given bands.
// All bands must share the same shape and transform.
func NewCube(bands ...*Band) (*Cube, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("no bands to stack")
	}
	first := bands[0]
	for _, b := range bands {
		if err := b.check(); err != nil {
			return nil, err
		}
		if err := first.Shape.Check(b.Shape); err != nil {
			return nil, fmt.Errorf("band '%s' does not align with '%s': %w", b.Name, first.Name, err)
		}
		if !first.Transform.Equal(b.Transform) {
			return nil, fmt.Errorf("band '%s' transform %v does not align with '%s' %v: %w",
				b.Name, b.Transform, first.Name, first.Transform, ErrShapeMismatch)
		}
	}
	return &Cube{
		Shape:     first.Shape,
		Transform: first.Transform,
		Bands:     bands,
	}, nil
}

// Names returns the band names in stacking order.
func (c *Cube) Names() []string {
	names := make([]string, len(c.Bands))
	for i, b := range c.Bands {
		names[i] = b.Name
	}
	return names
}

// Mask returns the nodata mask of the cube.
func (c *Cube) Mask() Mask {
	mask := NewMask(c.Shape)
	for _, b := range c.Bands {
		for i := range mask.Cells {
			if !b.Valid(i) {
				mask.Cells[i] = true
			}
		}
	}
	return mask
}

// Pixel returns the feature vector of the cell at the given index.
func (c *Cube) Pixel(i int) []float64 {
	x := make([]float64, len(c.Bands))
	for j, b := range c.Bands {
		x[j] = b.Values[i]
	}
	return x
}
