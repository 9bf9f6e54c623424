package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/prospectivity/infra/config"
	"github.com/drakos74/prospectivity/internal/experiment"
	"github.com/drakos74/prospectivity/internal/math/ml"
	"github.com/drakos74/prospectivity/internal/raster"
	"github.com/drakos74/prospectivity/internal/storage"
	"github.com/drakos74/prospectivity/internal/storage/file/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func results() []experiment.Result {
	shape := raster.Shape{Rows: 2, Cols: 2}
	m := raster.NewBand("checkerboard-0", shape, raster.Transform{X: 0, Y: 2, Width: 1, Height: 1}, -9999)
	copy(m.Values, []float64{0.1, 0.9, 0.5, 0.3})
	return []experiment.Result{{
		Experiment: experiment.Checkerboard,
		Fold:       "0",
		Train:      experiment.Counts{Rows: 10, Positives: 2},
		Test:       experiment.Counts{Rows: 8, Positives: 1},
		ROC: ml.ROC{
			FPR: []float64{0, 0.5, 1},
			TPR: []float64{0, 1, 1},
			AUC: 0.75,
		},
		Map: m,
	}}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	summary(&buf, results())
	out := buf.String()
	assert.Contains(t, out, "checkerboard")
	assert.Contains(t, out, "AUC")
	assert.Contains(t, out, "0.7500")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, write(dir, results()))

	for _, f := range []string{
		filepath.Join(dir, storage.MapsDir, "checkerboard-0.asc"),
		filepath.Join(dir, storage.MapsDir, "checkerboard-0.png"),
		filepath.Join(dir, "roc.png"),
	} {
		_, err := os.Stat(f)
		assert.NoError(t, err, f)
	}

	b, err := raster.ReadASCIIFile(filepath.Join(dir, storage.MapsDir, "checkerboard-0.asc"))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.1, 0.9, 0.5, 0.3}, b.Values, 1e-6)
}

func TestExampleConfig(t *testing.T) {
	cfg := experiment.DefaultConfig()
	require.NoError(t, config.Load("prospect.json", &cfg))
	assert.Len(t, cfg.Rasters, 3)
	assert.Equal(t, 500.0, cfg.Buffer)
	assert.NoError(t, cfg.Validate())
}

func TestWriteLayers(t *testing.T) {
	dir := t.TempDir()
	labels := raster.Grid{Shape: raster.Shape{Rows: 2, Cols: 2}, Values: []int{0, 1, raster.Nodata, 0}}
	transform := raster.Transform{X: 0, Y: 2, Width: 1, Height: 1}
	require.NoError(t, writeLayers(dir, []*raster.Band{labels.Band(experiment.LabelsLayer, transform)}))

	b, err := raster.ReadASCIIFile(filepath.Join(dir, storage.MapsDir, "labels.asc"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, b.Values[:2])
	assert.False(t, b.Valid(2))
	_, err = os.Stat(filepath.Join(dir, storage.MapsDir, "labels.png"))
	assert.NoError(t, err)
}

func TestPersistence(t *testing.T) {
	dir := t.TempDir()
	shard, closer, err := persistence(dir, "", false)
	require.NoError(t, err)
	defer closer()

	store, err := shard("run")
	require.NoError(t, err)
	r := results()[0]
	k := storage.Key{Run: "run", Experiment: r.Experiment, Label: r.Fold}
	require.NoError(t, store.Store(k, r))

	var loaded experiment.Result
	require.NoError(t, store.Load(k, &loaded))
	assert.Equal(t, r.ROC.AUC, loaded.ROC.AUC)
	_, err = os.Stat(filepath.Join(dir, storage.ResultsDir, "run", k.Path()+".json"))
	assert.NoError(t, err)

	_, _, err = persistence(dir, "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", false)
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	journal := json.NewJournal(t.TempDir())
	for _, r := range results() {
		require.NoError(t, journal.Add("run", r))
	}
	loaded, err := json.Events[experiment.Result](journal, "run")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Nil(t, loaded[0].Map)

	var buf bytes.Buffer
	summary(&buf, loaded)
	assert.Contains(t, buf.String(), "0.7500")
}
