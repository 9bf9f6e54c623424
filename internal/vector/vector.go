// Package vector reads point occurrences from delimited text files.
package vector

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drakos74/prospectivity/internal/raster"
)

// Point is a single occurrence with its attributes.
type Point struct {
	ID         string            `json:"id"`
	X          float64           `json:"x"`
	Y          float64           `json:"y"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Columns names the header columns holding the geometry.
type Columns struct {
	ID string `json:"id"`
	X  string `json:"x"`
	Y  string `json:"y"`
	// Comma is the field delimiter, defaults to ','.
	Comma string `json:"comma"`
}

// DefaultColumns reads 'x' and 'y' columns with no id.
func DefaultColumns() Columns {
	return Columns{
		X: "x",
		Y: "y",
	}
}

// ReadCSVFile reads the points from the given file.
func ReadCSVFile(path string, cols Columns) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open occurrences '%s': %w", path, err)
	}
	defer f.Close()
	points, err := ReadCSV(f, cols)
	if err != nil {
		return nil, fmt.Errorf("could not read occurrences '%s': %w", path, err)
	}
	return points, nil
}

// ReadCSV reads points from a delimited stream with a header line.
// Columns other than the geometry are kept as attributes, keyed by the lower-cased header.
func ReadCSV(r io.Reader, cols Columns) ([]Point, error) {
	reader := csv.NewReader(r)
	if cols.Comma != "" {
		reader.Comma = []rune(cols.Comma)[0]
	}
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	xi, ok := index[strings.ToLower(cols.X)]
	if !ok {
		return nil, fmt.Errorf("missing x column '%s'", cols.X)
	}
	yi, ok := index[strings.ToLower(cols.Y)]
	if !ok {
		return nil, fmt.Errorf("missing y column '%s'", cols.Y)
	}
	idi := -1
	if cols.ID != "" {
		i, ok := index[strings.ToLower(cols.ID)]
		if !ok {
			return nil, fmt.Errorf("missing id column '%s'", cols.ID)
		}
		idi = i
	}

	points := make([]Point, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		x, err := strconv.ParseFloat(strings.TrimSpace(row[xi]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x on line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[yi]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y on line %d: %w", line, err)
		}
		p := Point{
			X:          x,
			Y:          y,
			Attributes: make(map[string]string),
		}
		if idi >= 0 {
			p.ID = row[idi]
		} else {
			p.ID = strconv.Itoa(len(points))
		}
		for i, v := range row {
			if i == xi || i == yi || i == idi {
				continue
			}
			p.Attributes[strings.ToLower(strings.TrimSpace(header[i]))] = v
		}
		points = append(points, p)
	}
	return points, nil
}

// Filter keeps the points whose attribute matches any of the given values.
// Attribute names and values are compared case-insensitively.
func Filter(points []Point, attribute string, values ...string) []Point {
	attribute = strings.ToLower(strings.TrimSpace(attribute))
	accept := make(map[string]bool, len(values))
	for _, v := range values {
		accept[strings.ToLower(v)] = true
	}
	filtered := make([]Point, 0)
	for _, p := range points {
		if accept[strings.ToLower(p.Attributes[attribute])] {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Coordinates returns the point coordinates as rows of x and y.
func Coordinates(points []Point) [][]float64 {
	xy := make([][]float64, len(points))
	for i, p := range points {
		xy[i] = []float64{p.X, p.Y}
	}
	return xy
}

// Features converts the points into rasterizable features,
// with the burn value given by the point index.
func Features(points []Point, value func(i int) int) []raster.Feature {
	features := make([]raster.Feature, len(points))
	for i, p := range points {
		features[i] = raster.Feature{
			X:     p.X,
			Y:     p.Y,
			Value: value(i),
		}
	}
	return features
}

// Constant burns the same value for every point.
func Constant(v int) func(i int) int {
	return func(i int) int {
		return v
	}
}
