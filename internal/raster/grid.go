package raster

// Nodata marks a categorical cell that carries no information.
const Nodata = -1

// Grid is a categorical grid aligned with the raster cube.
// It backs label grids, cluster grids and checkerboard partitions.
type Grid struct {
	Shape  Shape
	Values []int
}

// NewGrid creates a grid filled with the given value.
func NewGrid(shape Shape, fill int) Grid {
	values := make([]int, shape.Len())
	if fill != 0 {
		for i := range values {
			values[i] = fill
		}
	}
	return Grid{
		Shape:  shape,
		Values: values,
	}
}

// At returns the value of the cell.
func (g Grid) At(r, c int) int {
	return g.Values[g.Shape.Index(r, c)]
}

// Copy returns a deep copy of the grid.
func (g Grid) Copy() Grid {
	values := make([]int, len(g.Values))
	copy(values, g.Values)
	return Grid{
		Shape:  g.Shape,
		Values: values,
	}
}

// Masked returns a copy of the grid with the nodata cells of the mask set to Nodata.
func (g Grid) Masked(mask Mask) (Grid, error) {
	if err := g.Shape.Check(mask.Shape); err != nil {
		return Grid{}, err
	}
	masked := g.Copy()
	for i, nodata := range mask.Cells {
		if nodata {
			masked.Values[i] = Nodata
		}
	}
	return masked, nil
}

// Map returns a new grid with every valid cell transformed by the given func.
// Nodata cells stay as they are.
func (g Grid) Map(fn func(v int) int) Grid {
	mapped := g.Copy()
	for i, v := range mapped.Values {
		if v != Nodata {
			mapped.Values[i] = fn(v)
		}
	}
	return mapped
}

// Count returns the number of cells with the given value.
func (g Grid) Count(v int) int {
	var n int
	for _, value := range g.Values {
		if value == v {
			n++
		}
	}
	return n
}

// Band converts the grid into a float band, with NaN for nodata cells.
func (g Grid) Band(name string, transform Transform) *Band {
	b := NewBand(name, g.Shape, transform, nan)
	for i, v := range g.Values {
		if v != Nodata {
			b.Values[i] = float64(v)
		}
	}
	return b
}
