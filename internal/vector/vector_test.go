package vector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const occurrences = `id,easting,northing,commodity
a,10.5,20.5,Au
b,11,21,cu
c,12,22,AU
`

func TestReadCSV(t *testing.T) {
	points, err := ReadCSV(strings.NewReader(occurrences), Columns{ID: "id", X: "easting", Y: "northing"})
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, Point{ID: "a", X: 10.5, Y: 20.5, Attributes: map[string]string{"commodity": "Au"}}, points[0])
	assert.Equal(t, [][]float64{{10.5, 20.5}, {11, 21}, {12, 22}}, Coordinates(points))
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(occurrences), Columns{X: "lon", Y: "northing"})
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("x,y\n1,a\n"), DefaultColumns())
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader(""), DefaultColumns())
	assert.Error(t, err)
}

func TestReadCSV_Delimiter(t *testing.T) {
	points, err := ReadCSV(strings.NewReader("x;y\n1;2\n"), Columns{X: "x", Y: "y", Comma: ";"})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "0", points[0].ID)
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte(occurrences), 0644))

	points, err := ReadCSVFile(path, Columns{X: "easting", Y: "northing"})
	require.NoError(t, err)
	assert.Len(t, points, 3)

	_, err = ReadCSVFile(filepath.Join(t.TempDir(), "none.csv"), DefaultColumns())
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	points, err := ReadCSV(strings.NewReader(occurrences), Columns{ID: "id", X: "easting", Y: "northing"})
	require.NoError(t, err)

	gold := Filter(points, "commodity", "au")
	require.Len(t, gold, 2)
	assert.Equal(t, "a", gold[0].ID)
	assert.Equal(t, "c", gold[1].ID)
}

func TestFeatures(t *testing.T) {
	points := []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	features := Features(points, func(i int) int { return i + 1 })
	assert.Equal(t, 2, features[1].Value)
	assert.Equal(t, 3.0, features[1].X)

	features = Features(points, Constant(1))
	assert.Equal(t, 1, features[0].Value)
}

func TestFilter_AttributeCase(t *testing.T) {
	points, err := ReadCSV(strings.NewReader("X,Y,Commodity\n1,2,Au\n3,4,Cu\n"), DefaultColumns())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"commodity": "Au"}, points[0].Attributes)

	for _, attribute := range []string{"commodity", "Commodity", " COMMODITY"} {
		gold := Filter(points, attribute, "AU")
		require.Len(t, gold, 1, attribute)
		assert.Equal(t, 1.0, gold[0].X)
	}
}
