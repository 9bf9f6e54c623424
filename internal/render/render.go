// Package render draws roc curves and prospectivity maps.
package render

import (
	"fmt"
	"math"

	pmath "github.com/drakos74/prospectivity/internal/math"
	"github.com/drakos74/prospectivity/internal/math/ml"
	"github.com/drakos74/prospectivity/internal/raster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const size = 6 * vg.Inch

// Curve is a named roc curve.
type Curve struct {
	Name string
	ROC  ml.ROC
}

// ROC draws the curves on a single plot and saves it to the path.
// The file extension picks the format (png, svg, pdf ...).
func ROC(path, title string, curves ...Curve) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "false positive rate"
	p.Y.Label.Text = "true positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = false
	p.Legend.Left = false
	p.Add(plotter.NewGrid())

	chance, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return err
	}
	chance.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(chance)

	for i, c := range curves {
		pts := make(plotter.XYs, len(c.ROC.FPR))
		for j := range pts {
			pts[j].X = c.ROC.FPR[j]
			pts[j].Y = c.ROC.TPR[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("could not draw curve '%s': %w", c.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s (auc %s)", c.Name, pmath.Format(c.ROC.AUC, 3)), line)
	}

	if err := p.Save(size, size, path); err != nil {
		return fmt.Errorf("could not save plot '%s': %w", path, err)
	}
	return nil
}

// Map draws the band as a heat map and saves it to the path.
// Nodata cells are left blank.
func Map(path, title string, b *raster.Band) error {
	summary := raster.Summarize(b)
	if summary.Count == 0 {
		return fmt.Errorf("band '%s' has no valid cells", b.Name)
	}

	h := plotter.NewHeatMap(grid{band: b}, palette.Heat(32, 1))
	h.Min, h.Max = summary.Min, summary.Max
	if h.Min == h.Max {
		h.Max = h.Min + 1
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(h)

	ratio := float64(b.Shape.Rows) / float64(b.Shape.Cols)
	if err := p.Save(size, vg.Length(ratio)*size, path); err != nil {
		return fmt.Errorf("could not save map '%s': %w", path, err)
	}
	return nil
}

// grid adapts a band to plotter.GridXYZ, with row 0 at the bottom.
type grid struct {
	band *raster.Band
}

func (g grid) Dims() (c, r int) {
	return g.band.Shape.Cols, g.band.Shape.Rows
}

func (g grid) Z(c, r int) float64 {
	row := g.band.Shape.Rows - 1 - r
	i := g.band.Shape.Index(row, c)
	if !g.band.Valid(i) {
		return nan
	}
	return g.band.Values[i]
}

func (g grid) X(c int) float64 {
	x, _ := g.band.Transform.Center(0, c)
	return x
}

func (g grid) Y(r int) float64 {
	_, y := g.band.Transform.Center(g.band.Shape.Rows-1-r, 0)
	return y
}

var nan = math.NaN()
