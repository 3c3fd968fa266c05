package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/dijkstravis/gridgraph"
)

var (
	colorStart = tcell.NewRGBColor(25, 220, 25)
	colorEnd   = tcell.NewRGBColor(25, 25, 220)
	colorPath  = tcell.NewRGBColor(255, 255, 255)
)

// shade maps stretch in [0,1] to a grey level in [0,200], darker for costlier
// cells. Values outside [0,1] are an error, not clamped.
func shade(stretch float64) (int32, error) {
	if !(stretch >= 0 && stretch <= 1) {
		return 0, fmt.Errorf("stretch %v not in [0,1]", stretch)
	}

	return int32(math.Round((1 - stretch) * 200)), nil
}

// cellColor picks the colour for one cell. Later rules win: base, explored,
// current, path, start, end.
func cellColor(v gridgraph.CellView) (tcell.Color, error) {
	n, err := shade(v.Stretch)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("cell (%d,%d): %w", v.X, v.Y, err)
	}

	c := tcell.NewRGBColor(n, n, n)
	if v.Explored {
		c = tcell.NewRGBColor(n, n+50, n)
	}
	if v.Current || v.OnPath {
		c = colorPath
	}
	if v.Start {
		c = colorStart
	}
	if v.End {
		c = colorEnd
	}

	return c, nil
}

// draw paints the grid and a status line. Each cell is two columns wide when
// the terminal allows it so cells look square.
func draw(s tcell.Screen, gg *gridgraph.GridGraph, status string) error {
	s.Clear()
	sw, _ := s.Size()
	cw := 2
	if gg.Width()*2 > sw {
		cw = 1
	}

	for _, v := range gg.Snapshot() {
		c, err := cellColor(v)
		if err != nil {
			return err
		}
		st := tcell.StyleDefault.Background(c)
		for i := 0; i < cw; i++ {
			s.SetContent(v.X*cw+i, v.Y, ' ', nil, st)
		}
	}

	line := fmt.Sprintf("%s | steps=%d explored=%d | space: step  enter: solve  a: auto  r: reseed  q: quit",
		status, gg.Steps(), gg.ExploredCount())
	st := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, r := range line {
		s.SetContent(i, gg.Height()+1, r, nil, st)
	}
	s.Show()

	return nil
}
