package main

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstravis/gridgraph"
)

func smallConfig() config {
	return config{
		width: 12, height: 8,
		startX: 1, startY: 1,
		endX: 10, endY: 6,
		scale: 3, seed: 2,
		delay: 1,
	}
}

func TestRunHeadless(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runHeadless(smallConfig(), &out))
	assert.Contains(t, out.String(), "grid 12x8 seed=2 scale=3")
	assert.Contains(t, out.String(), "start (1,1) end (10,6)")
	assert.Contains(t, out.String(), "path=")
	assert.Contains(t, out.String(), "cost=")
}

func TestRunHeadless_BadStart(t *testing.T) {
	cfg := smallConfig()
	cfg.startX = 40
	err := runHeadless(cfg, &bytes.Buffer{})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestNewGraph_LargeScaleLattice checks the lattice grows with the grid.
func TestNewGraph_LargeScaleLattice(t *testing.T) {
	cfg := smallConfig()
	cfg.width, cfg.height = 600, 2
	cfg.scale = 1
	cfg.endX, cfg.endY = 599, 1
	gg, err := newGraph(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1200, gg.Len())
}

func TestViewer(t *testing.T) {
	gg, err := newGraph(smallConfig())
	require.NoError(t, err)
	v := &viewer{cfg: smallConfig(), gg: gg}

	v.advance()
	assert.Equal(t, 1, v.gg.Steps())
	v.finish()
	assert.True(t, v.gg.IsSolved())
	assert.NoError(t, v.err)
	assert.Contains(t, v.status(), "solved")

	v.auto = true
	v.advance()
	assert.False(t, v.auto)

	require.NoError(t, v.reseed())
	assert.Equal(t, int64(3), v.cfg.seed)
	assert.False(t, v.gg.IsSolved())
	assert.Contains(t, v.status(), "seed 3 unsolved")
}

func TestShade(t *testing.T) {
	n, err := shade(0)
	require.NoError(t, err)
	assert.Equal(t, int32(200), n)
	n, err = shade(1)
	require.NoError(t, err)
	assert.Equal(t, int32(0), n)
	n, err = shade(0.5)
	require.NoError(t, err)
	assert.Equal(t, int32(100), n)

	_, err = shade(1.01)
	assert.Error(t, err)
	_, err = shade(-0.2)
	assert.Error(t, err)
}

// TestCellColor checks later rules override earlier ones.
func TestCellColor(t *testing.T) {
	base := gridgraph.CellView{Stretch: 0.5}
	c, err := cellColor(base)
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(100, 100, 100), c)

	explored := base
	explored.Explored = true
	c, err = cellColor(explored)
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(100, 150, 100), c)

	onPath := explored
	onPath.OnPath = true
	c, _ = cellColor(onPath)
	assert.Equal(t, colorPath, c)

	end := onPath
	end.Start, end.End = true, true
	c, _ = cellColor(end)
	assert.Equal(t, colorEnd, c)

	_, err = cellColor(gridgraph.CellView{Stretch: 2})
	assert.Error(t, err)
}

// TestDraw paints onto a simulation screen.
func TestDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(80, 20)

	gg, err := newGraph(smallConfig())
	require.NoError(t, err)
	require.NoError(t, gg.Solve())
	require.NoError(t, draw(s, gg, "test"))

	// Start (1,1) is two columns wide at x=2,3.
	for _, x := range []int{2, 3} {
		_, _, st, _ := s.GetContent(x, 1)
		_, bg, _ := st.Decompose()
		assert.Equal(t, colorStart, bg)
	}
	_, _, st, _ := s.GetContent(20, 6)
	_, bg, _ := st.Decompose()
	assert.Equal(t, colorEnd, bg)

	r, _, _, _ := s.GetContent(0, gg.Height()+1)
	assert.Equal(t, 't', r)
}
