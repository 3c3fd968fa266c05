package gridgraph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstravis/gridgraph"
)

const eps = 1e-9

// uniform returns w×h stretch values all equal to v.
func uniform(w, h int, v float64) []float64 {
	s := make([]float64, w*h)
	for i := range s {
		s[i] = v
	}
	return s
}

// quantized returns w×h stretch values drawn from a small set so that
// equal tentative distances (ties) are common.
func quantized(w, h int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	levels := []float64{0.25, 0.5, 0.75}
	s := make([]float64, w*h)
	for i := range s {
		s[i] = levels[r.Intn(len(levels))]
	}
	return s
}

// random returns w×h stretch values uniform in [0,1).
func random(w, h int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	s := make([]float64, w*h)
	for i := range s {
		s[i] = r.Float64()
	}
	return s
}

// mustGraph builds a graph from explicit stretch values with start and end set.
func mustGraph(t *testing.T, w, h int, stretch []float64, sx, sy, ex, ey int, opts ...gridgraph.Option) *gridgraph.GridGraph {
	t.Helper()
	opts = append([]gridgraph.Option{gridgraph.WithStretch(stretch)}, opts...)
	gg, err := gridgraph.New(w, h, opts...)
	require.NoError(t, err)
	require.NoError(t, gg.SetStart(sx, sy))
	require.NoError(t, gg.SetEnd(ex, ey))
	return gg
}

// offsets mirrors the solver's neighbour order: E, NE, N, NW, W, SW, S, SE.
var offsets = [8][2]int{{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// refGraph is a literal scout-then-linear-scan solver used as an oracle for
// step order and distances.
type refGraph struct {
	w, h     int
	stretch  []float64
	dist     []float64
	prev     []int
	explored []bool
	cur      int
}

func newRef(w, h int, stretch []float64, start int) *refGraph {
	r := &refGraph{
		w:        w,
		h:        h,
		stretch:  stretch,
		dist:     make([]float64, w*h),
		prev:     make([]int, w*h),
		explored: make([]bool, w*h),
		cur:      start,
	}
	for i := range r.dist {
		r.dist[i] = -1
		r.prev[i] = -1
	}
	r.dist[start] = 0
	r.explored[start] = true
	return r
}

// step scouts and moves; it returns false when no cell is left to explore.
func (r *refGraph) step() bool {
	cx, cy := r.cur%r.w, r.cur/r.w
	for _, d := range offsets {
		tx, ty := cx+d[0], cy+d[1]
		if tx < 0 || tx >= r.w || ty < 0 || ty >= r.h {
			continue
		}
		t := tx + ty*r.w
		m := 1.0
		if d[0] != 0 && d[1] != 0 {
			m = math.Sqrt2
		}
		c := r.dist[r.cur] + (r.stretch[r.cur]+r.stretch[t])*m
		if r.dist[t] == -1 || c < r.dist[t] {
			r.dist[t] = c
			r.prev[t] = r.cur
		}
	}
	next := -1
	for i := range r.dist {
		if !r.explored[i] && r.dist[i] != -1 && (next == -1 || r.dist[i] < r.dist[next]) {
			next = i
		}
	}
	if next == -1 {
		return false
	}
	r.explored[next] = true
	r.cur = next
	return true
}

// bellmanFord computes exact shortest distances from start by relaxing every
// edge until nothing changes.
func bellmanFord(w, h int, stretch []float64, start int) []float64 {
	n := w * h
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0
	for changed := true; changed; {
		changed = false
		for u := 0; u < n; u++ {
			if math.IsInf(dist[u], 1) {
				continue
			}
			ux, uy := u%w, u/w
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if vx < 0 || vx >= w || vy < 0 || vy >= h {
					continue
				}
				v := vx + vy*w
				m := 1.0
				if d[0] != 0 && d[1] != 0 {
					m = math.Sqrt2
				}
				if c := dist[u] + (stretch[u]+stretch[v])*m; c < dist[v]-eps {
					dist[v] = c
					changed = true
				}
			}
		}
	}
	return dist
}
