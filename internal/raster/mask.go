package raster

// Mask marks the cells that are invalid in at least one band.
type Mask struct {
	Shape Shape
	Cells []bool
}

// NewMask creates a mask with all cells valid.
func NewMask(shape Shape) Mask {
	return Mask{
		Shape: shape,
		Cells: make([]bool, shape.Len()),
	}
}

// Valid returns true if the cell holds data in every band.
func (m Mask) Valid(i int) bool {
	return !m.Cells[i]
}

// Count returns the number of nodata cells.
func (m Mask) Count() int {
	var n int
	for _, nodata := range m.Cells {
		if nodata {
			n++
		}
	}
	return n
}
