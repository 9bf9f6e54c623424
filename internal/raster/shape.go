package raster

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned whenever two grids that should be aligned are not.
var ErrShapeMismatch = errors.New("shape mismatch")

// Shape is the spatial extent of a grid in cells.
type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Len returns the number of cells.
func (s Shape) Len() int {
	return s.Rows * s.Cols
}

// Index returns the row-major index of the cell.
func (s Shape) Index(r, c int) int {
	return r*s.Cols + c
}

// Cell returns the row and column of the given row-major index.
func (s Shape) Cell(i int) (int, int) {
	return i / s.Cols, i % s.Cols
}

// Contains checks if the row and column fall inside the grid.
func (s Shape) Contains(r, c int) bool {
	return r >= 0 && r < s.Rows && c >= 0 && c < s.Cols
}

// Check returns an error if the other shape is not identical.
func (s Shape) Check(other Shape) error {
	if s != other {
		return fmt.Errorf("%v vs %v: %w", s, other, ErrShapeMismatch)
	}
	return nil
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
