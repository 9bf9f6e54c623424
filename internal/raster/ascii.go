package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultNodata = -9999

// ReadASCIIFile reads an ESRI ASCII grid file into a band named after the file.
func ReadASCIIFile(path string) (*Band, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open raster '%s': %w", path, err)
	}
	defer f.Close()

	b, err := ReadASCII(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("could not read raster '%s': %w", path, err)
	}
	b.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return b, nil
}

// ReadASCII reads an ESRI ASCII grid.
//
// The header is a list of key value pairs:
//
//	ncols        4
//	nrows        3
//	xllcorner    0.0
//	yllcorner    0.0
//	cellsize     10.0
//	NODATA_value -9999
//
// xllcenter and yllcenter are accepted instead of the corner keys,
// and NODATA_value is optional.
func ReadASCII(r io.Reader) (*Band, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	header := make(map[string]float64)
	var token string
	for scanner.Scan() {
		token = scanner.Text()
		if _, err := strconv.ParseFloat(token, 64); err == nil {
			break
		}
		key := strings.ToLower(token)
		if !scanner.Scan() {
			return nil, fmt.Errorf("missing value for header '%s'", token)
		}
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for header '%s': %w", token, err)
		}
		header[key] = v
		token = ""
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	shape, transform, nodata, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, shape.Len())
	if token != "" {
		v, _ := strconv.ParseFloat(token, 64)
		values = append(values, v)
	}
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cell value at %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(values) != shape.Len() {
		return nil, fmt.Errorf("expected %d cells for %v but found %d: %w", shape.Len(), shape, len(values), ErrShapeMismatch)
	}

	return &Band{
		Shape:     shape,
		Transform: transform,
		Nodata:    nodata,
		Values:    values,
	}, nil
}

func parseHeader(header map[string]float64) (Shape, Transform, float64, error) {
	for _, key := range []string{"ncols", "nrows", "cellsize"} {
		if _, ok := header[key]; !ok {
			return Shape{}, Transform{}, 0, fmt.Errorf("missing header '%s'", key)
		}
	}
	shape := Shape{
		Rows: int(header["nrows"]),
		Cols: int(header["ncols"]),
	}
	if shape.Rows <= 0 || shape.Cols <= 0 {
		return Shape{}, Transform{}, 0, fmt.Errorf("invalid grid size %v", shape)
	}
	size := header["cellsize"]
	if size <= 0 {
		return Shape{}, Transform{}, 0, fmt.Errorf("invalid cell size %g", size)
	}

	var x, y float64
	if v, ok := header["xllcorner"]; ok {
		x = v
	} else if v, ok := header["xllcenter"]; ok {
		x = v - size/2
	} else {
		return Shape{}, Transform{}, 0, fmt.Errorf("missing header 'xllcorner'")
	}
	if v, ok := header["yllcorner"]; ok {
		y = v
	} else if v, ok := header["yllcenter"]; ok {
		y = v - size/2
	} else {
		return Shape{}, Transform{}, 0, fmt.Errorf("missing header 'yllcorner'")
	}

	nodata := float64(defaultNodata)
	if v, ok := header["nodata_value"]; ok {
		nodata = v
	}

	return shape, Transform{
		X:      x,
		Y:      y + float64(shape.Rows)*size,
		Width:  size,
		Height: size,
	}, nodata, nil
}

// WriteASCIIFile writes the band as an ESRI ASCII grid file.
func WriteASCIIFile(path string, b *Band) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir for '%s': %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file '%s': %w", path, err)
	}
	defer f.Close()
	return WriteASCII(f, b)
}

// WriteASCII writes the band as an ESRI ASCII grid.
// NaN cells are written with the nodata value of the band,
// or the default sentinel if the band uses NaN itself.
func WriteASCII(w io.Writer, b *Band) error {
	if b.Transform.Width != b.Transform.Height {
		return fmt.Errorf("ascii grids need square cells, got %gx%g", b.Transform.Width, b.Transform.Height)
	}
	nodata := b.Nodata
	if math.IsNaN(nodata) {
		nodata = defaultNodata
	}
	bw := bufio.NewWriter(w)
	bounds := b.Transform.Bounds(b.Shape)
	fmt.Fprintf(bw, "ncols %d\n", b.Shape.Cols)
	fmt.Fprintf(bw, "nrows %d\n", b.Shape.Rows)
	fmt.Fprintf(bw, "xllcorner %s\n", format(bounds[0]))
	fmt.Fprintf(bw, "yllcorner %s\n", format(bounds[1]))
	fmt.Fprintf(bw, "cellsize %s\n", format(b.Transform.Width))
	fmt.Fprintf(bw, "NODATA_value %s\n", format(nodata))
	for r := 0; r < b.Shape.Rows; r++ {
		for c := 0; c < b.Shape.Cols; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			v := b.At(r, c)
			if !b.Valid(b.Shape.Index(r, c)) {
				v = nodata
			}
			bw.WriteString(format(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
