package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/drakos74/prospectivity/internal/experiment"
	pmath "github.com/drakos74/prospectivity/internal/math"
	"github.com/drakos74/prospectivity/internal/raster"
	"github.com/drakos74/prospectivity/internal/render"
	"github.com/drakos74/prospectivity/internal/storage"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
)

// write stores the probability map of every fold as an ascii grid and a png,
// and one roc plot for the whole run.
func write(dir string, results []experiment.Result) error {
	if len(results) == 0 {
		return nil
	}
	maps := filepath.Join(dir, storage.MapsDir)
	if err := os.MkdirAll(maps, os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir: %s: %w", maps, err)
	}
	curves := make([]render.Curve, 0, len(results))
	for _, r := range results {
		curves = append(curves, render.Curve{Name: r.Name(), ROC: r.ROC})
		if r.Map == nil {
			continue
		}
		title := fmt.Sprintf("%s (auc %s)", r.Name(), pmath.Format(r.ROC.AUC, 3))
		if err := writeBand(maps, title, r.Map); err != nil {
			return err
		}
	}
	p := filepath.Join(dir, "roc.png")
	if err := render.ROC(p, "ROC", curves...); err != nil {
		return err
	}
	log.Info().Str("dir", dir).Int("maps", len(results)).Msg("wrote output")
	return nil
}

// writeLayers stores the label, checkerboard and cluster grids next to the maps.
func writeLayers(dir string, layers []*raster.Band) error {
	maps := filepath.Join(dir, storage.MapsDir)
	for _, l := range layers {
		if err := writeBand(maps, l.Name, l); err != nil {
			return err
		}
	}
	log.Info().Str("dir", maps).Int("layers", len(layers)).Msg("wrote layers")
	return nil
}

// writeBand writes the band as <name>.asc and <name>.png in the given dir.
func writeBand(dir, title string, b *raster.Band) error {
	if err := raster.WriteASCIIFile(filepath.Join(dir, b.Name+".asc"), b); err != nil {
		return err
	}
	return render.Map(filepath.Join(dir, b.Name+".png"), title, b)
}

func summary(w io.Writer, results []experiment.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"experiment", "fold", "train", "train +", "test", "test +", "auc"})
	for _, r := range results {
		table.Append([]string{
			r.Experiment,
			r.Fold,
			strconv.Itoa(r.Train.Rows),
			strconv.Itoa(r.Train.Positives),
			strconv.Itoa(r.Test.Rows),
			strconv.Itoa(r.Test.Positives),
			pmath.Format(r.ROC.AUC, 4),
		})
	}
	table.Render()
}
