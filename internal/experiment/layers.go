package experiment

import (
	"fmt"

	"github.com/drakos74/prospectivity/internal/partition"
	"github.com/drakos74/prospectivity/internal/raster"
)

const (
	LabelsLayer       = "labels"
	CheckerboardLayer = "checkerboard"
	ClustersLayer     = "clusters"
)

// Layers returns the categorical grids behind the configured experiments as bands.
// The occurrence labels are always included, the checkerboard and the clusters
// only when their experiment runs. Nodata cells of the inputs are NaN.
func Layers(cfg Config, in *Inputs) ([]*raster.Band, error) {
	layers := []*raster.Band{in.Labels.Band(LabelsLayer, in.Cube.Transform)}
	for _, name := range cfg.Names() {
		switch name {
		case Checkerboard:
			board, err := partition.Checkerboard(in.Cube.Shape, cfg.Checkerboard.Rows, cfg.Checkerboard.Cols)
			if err != nil {
				return nil, err
			}
			board, err = board.Masked(in.Mask)
			if err != nil {
				return nil, fmt.Errorf("could not mask checkerboard: %w", err)
			}
			layers = append(layers, board.Band(CheckerboardLayer, in.Cube.Transform))
		case ClusterHoldout:
			clusters, err := clusterGrid(cfg, in)
			if err != nil {
				return nil, err
			}
			layers = append(layers, clusters.Band(ClustersLayer, in.Cube.Transform))
		}
	}
	return layers, nil
}
