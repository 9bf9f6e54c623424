package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	x, y := testTransform.Center(0, 0)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 25.0, y)

	r, c := testTransform.Cell(35, 1)
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	assert.Equal(t, [4]float64{0, 0, 40, 30}, testTransform.Bounds(Shape{Rows: 3, Cols: 4}))
}

func TestGrid_Masked(t *testing.T) {
	shape := Shape{Rows: 2, Cols: 2}
	g := NewGrid(shape, 1)
	mask := NewMask(shape)
	mask.Cells[3] = true

	masked, err := g.Masked(mask)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, Nodata}, masked.Values)
	// the original stays untouched
	assert.Equal(t, []int{1, 1, 1, 1}, g.Values)

	_, err = g.Masked(NewMask(Shape{Rows: 1, Cols: 4}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestGrid_Map(t *testing.T) {
	g := Grid{Shape: Shape{Rows: 1, Cols: 3}, Values: []int{1, Nodata, 3}}
	mapped := g.Map(func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, Nodata, 6}, mapped.Values)
	assert.Equal(t, 1, mapped.Count(Nodata))
}

func TestGrid_Band(t *testing.T) {
	g := Grid{Shape: Shape{Rows: 1, Cols: 2}, Values: []int{1, Nodata}}
	b := g.Band("labels", testTransform)
	assert.Equal(t, 1.0, b.Values[0])
	assert.True(t, math.IsNaN(b.Values[1]))
	assert.False(t, b.Valid(1))
}

func TestRasterize(t *testing.T) {
	shape := Shape{Rows: 3, Cols: 4}

	t.Run("point", func(t *testing.T) {
		g := Rasterize(shape, testTransform, []Feature{
			{X: 12, Y: 18, Value: 1},
			{X: 500, Y: 500, Value: 1},
		}, 0, 0)
		assert.Equal(t, 1, g.Count(1))
		assert.Equal(t, 1, g.At(1, 1))
	})

	t.Run("buffer", func(t *testing.T) {
		// centre of (1,1) is (15,15), neighbours are 10 away
		g := Rasterize(shape, testTransform, []Feature{{X: 15, Y: 15, Value: 2}}, 10, 0)
		assert.Equal(t, 5, g.Count(2))
		assert.Equal(t, 2, g.At(0, 1))
		assert.Equal(t, 2, g.At(1, 0))
		assert.Equal(t, 0, g.At(0, 0))
	})

	t.Run("overwrite", func(t *testing.T) {
		g := Rasterize(shape, testTransform, []Feature{
			{X: 15, Y: 15, Value: 1},
			{X: 15, Y: 15, Value: 2},
		}, 0, 0)
		assert.Equal(t, 2, g.At(1, 1))
		assert.Equal(t, 0, g.Count(1))
	})

	t.Run("background", func(t *testing.T) {
		g := Rasterize(shape, testTransform, nil, 5, 7)
		assert.Equal(t, shape.Len(), g.Count(7))
	})
}
