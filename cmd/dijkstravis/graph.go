package main

import (
	"fmt"

	"github.com/katalvlaran/dijkstravis/gridgraph"
)

// newGraph builds a graph from cfg and places start and end.
func newGraph(cfg config) (*gridgraph.GridGraph, error) {
	opts := []gridgraph.Option{
		gridgraph.WithScale(cfg.scale),
		gridgraph.WithSeed(cfg.seed),
	}
	if cfg.wall > 0 {
		opts = append(opts, gridgraph.WithImpassable(cfg.wall))
	}
	// The lattice must cover every sampled cell plus the +1 corner.
	lw := int(float64(cfg.width-1)/cfg.scale) + 2
	lh := int(float64(cfg.height-1)/cfg.scale) + 2
	if lw < gridgraph.DefaultLatticeWidth {
		lw = gridgraph.DefaultLatticeWidth
	}
	if lh < gridgraph.DefaultLatticeHeight {
		lh = gridgraph.DefaultLatticeHeight
	}
	opts = append(opts, gridgraph.WithLattice(lw, lh))

	gg, err := gridgraph.New(cfg.width, cfg.height, opts...)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	if err = gg.SetStart(cfg.startX, cfg.startY); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err = gg.SetEnd(cfg.endX, cfg.endY); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return gg, nil
}
