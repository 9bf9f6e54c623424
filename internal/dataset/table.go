// Package dataset reshapes raster cubes into pixel tables and back.
package dataset

import (
	"fmt"

	"github.com/drakos74/prospectivity/internal/raster"
)

// Table is a pixel-by-feature table with aligned labels.
// Cells holds the row-major grid index each row was taken from.
type Table struct {
	Bands    []string    `json:"bands"`
	Features [][]float64 `json:"features"`
	Labels   []int       `json:"labels"`
	Cells    []int       `json:"cells"`
}

// FromCube flattens the cube into a table in row-major order.
// Cells labelled raster.Nodata are dropped; every other cell is kept
// with its label, so apply the cube mask to the labels beforehand.
func FromCube(cube *raster.Cube, labels raster.Grid) (*Table, error) {
	if err := cube.Shape.Check(labels.Shape); err != nil {
		return nil, fmt.Errorf("labels do not align with cube: %w", err)
	}
	n := labels.Shape.Len() - labels.Count(raster.Nodata)
	t := &Table{
		Bands:    cube.Names(),
		Features: make([][]float64, 0, n),
		Labels:   make([]int, 0, n),
		Cells:    make([]int, 0, n),
	}
	for i, label := range labels.Values {
		if label == raster.Nodata {
			continue
		}
		t.Features = append(t.Features, cube.Pixel(i))
		t.Labels = append(t.Labels, label)
		t.Cells = append(t.Cells, i)
	}
	return t, nil
}

// Full builds a table over every valid cell of the cube, labelled 0.
func Full(cube *raster.Cube, mask raster.Mask) (*Table, error) {
	labels, err := raster.NewGrid(cube.Shape, 0).Masked(mask)
	if err != nil {
		return nil, err
	}
	return FromCube(cube, labels)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Labels)
}

// Count returns the number of rows with the given label.
func (t *Table) Count(label int) int {
	var n int
	for _, l := range t.Labels {
		if l == label {
			n++
		}
	}
	return n
}

// Subset returns a new table with the given rows, in the given order.
// Feature rows are shared with the original table.
func (t *Table) Subset(rows []int) *Table {
	sub := &Table{
		Bands:    t.Bands,
		Features: make([][]float64, len(rows)),
		Labels:   make([]int, len(rows)),
		Cells:    make([]int, len(rows)),
	}
	for i, r := range rows {
		sub.Features[i] = t.Features[r]
		sub.Labels[i] = t.Labels[r]
		sub.Cells[i] = t.Cells[r]
	}
	return sub
}
