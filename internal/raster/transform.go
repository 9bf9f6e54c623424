package raster

import (
	"fmt"
	"math"
)

// Transform is the affine mapping from cells to coordinates.
// X and Y are the coordinates of the top-left corner of the grid,
// Width and Height the cell size along each axis.
// Rows grow southwards, so row r spans [Y - (r+1)*Height, Y - r*Height].
type Transform struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the coordinates of the centre of the cell.
func (t Transform) Center(r, c int) (float64, float64) {
	return t.X + (float64(c)+0.5)*t.Width, t.Y - (float64(r)+0.5)*t.Height
}

// Cell returns the row and column containing the coordinates.
// The result might be outside the grid, use Shape.Contains to check.
func (t Transform) Cell(x, y float64) (int, int) {
	c := int(math.Floor((x - t.X) / t.Width))
	r := int(math.Floor((t.Y - y) / t.Height))
	return r, c
}

// Bounds returns the min x, min y, max x and max y of a grid with the given shape.
func (t Transform) Bounds(s Shape) [4]float64 {
	return [4]float64{
		t.X,
		t.Y - float64(s.Rows)*t.Height,
		t.X + float64(s.Cols)*t.Width,
		t.Y,
	}
}

// Equal compares two transforms allowing for float noise from the file headers.
func (t Transform) Equal(other Transform) bool {
	const eps = 1e-9
	return math.Abs(t.X-other.X) < eps &&
		math.Abs(t.Y-other.Y) < eps &&
		math.Abs(t.Width-other.Width) < eps &&
		math.Abs(t.Height-other.Height) < eps
}

func (t Transform) String() string {
	return fmt.Sprintf("[%g,%g|%gx%g]", t.X, t.Y, t.Width, t.Height)
}
