package raster

import "math"

// Feature is a point geometry carrying the value to burn.
type Feature struct {
	X     float64
	Y     float64
	Value int
}

// Rasterize burns the features into a new grid filled with the background value.
// A feature with a positive buffer burns every cell whose centre lies within the buffer distance,
// otherwise only the cell containing it. Later features overwrite earlier ones.
// Features outside the grid are ignored.
func Rasterize(shape Shape, transform Transform, features []Feature, buffer float64, background int) Grid {
	grid := NewGrid(shape, background)
	for _, f := range features {
		if buffer <= 0 {
			r, c := transform.Cell(f.X, f.Y)
			if shape.Contains(r, c) {
				grid.Values[shape.Index(r, c)] = f.Value
			}
			continue
		}
		// only scan the window that can intersect the buffer
		r0, c0 := transform.Cell(f.X-buffer, f.Y+buffer)
		r1, c1 := transform.Cell(f.X+buffer, f.Y-buffer)
		r0, c0 = clamp(r0, 0, shape.Rows-1), clamp(c0, 0, shape.Cols-1)
		r1, c1 = clamp(r1, 0, shape.Rows-1), clamp(c1, 0, shape.Cols-1)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				x, y := transform.Center(r, c)
				if math.Hypot(x-f.X, y-f.Y) <= buffer {
					grid.Values[shape.Index(r, c)] = f.Value
				}
			}
		}
	}
	return grid
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
