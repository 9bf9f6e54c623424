// Package partition splits pixels into training and holdout sets.
package partition

import (
	"fmt"

	"github.com/drakos74/prospectivity/internal/raster"
)

// Checkerboard tiles the grid into blocks of h rows by w columns.
// Cell (i, j) belongs to class 1 when floor(i/h) and floor(j/w) differ in parity,
// otherwise to class 0. Partial blocks at the border are not special-cased.
func Checkerboard(shape raster.Shape, h, w int) (raster.Grid, error) {
	if h <= 0 || w <= 0 {
		return raster.Grid{}, fmt.Errorf("invalid block size %dx%d", h, w)
	}
	board := raster.NewGrid(shape, 0)
	for i := 0; i < shape.Rows; i++ {
		for j := 0; j < shape.Cols; j++ {
			if (i/h)%2 != (j/w)%2 {
				board.Values[shape.Index(i, j)] = 1
			}
		}
	}
	return board, nil
}

// Half keeps the labels of the cells whose board class matches;
// all other cells become raster.Nodata.
func Half(labels, board raster.Grid, class int) (raster.Grid, error) {
	if err := labels.Shape.Check(board.Shape); err != nil {
		return raster.Grid{}, fmt.Errorf("board does not align with labels: %w", err)
	}
	half := labels.Copy()
	for i, b := range board.Values {
		if b != class {
			half.Values[i] = raster.Nodata
		}
	}
	return half, nil
}
