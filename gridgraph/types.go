package gridgraph

import "math"

const (
	// Unknown is the tentative distance of a cell that has not been scouted.
	Unknown = -1.0
	// NoPredecessor marks a cell without a predecessor link.
	NoPredecessor = -1

	// DiagonalMultiplier scales the cost of the four diagonal moves.
	DiagonalMultiplier = math.Sqrt2

	// DefaultScale, DefaultLatticeWidth and DefaultLatticeHeight describe the
	// noise field built when no Sampler or stretch slice is supplied.
	DefaultScale         = 13.0
	DefaultLatticeWidth  = 256
	DefaultLatticeHeight = 256
)

// Sampler is a continuous scalar field. *noise.Field implements it.
type Sampler interface {
	Sample(x, y float64) (float64, error)
}

// State is the solver lifecycle state.
type State int

const (
	// Unsolved means the end cell has not been explored yet.
	Unsolved State = iota
	// Solved means the end cell is explored; its distance is final.
	Solved
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unsolved:
		return "unsolved"
	case Solved:
		return "solved"
	default:
		return "unknown"
	}
}

// Cell is a single grid vertex.
type Cell struct {
	ID          int     // row-major index
	Stretch     float64 // traversal cost contribution in [0,1]
	Explored    bool    // distance is final
	Distance    float64 // tentative distance from start, Unknown if not scouted
	Predecessor int     // previous cell on the best known path, NoPredecessor if none
}

// Scouted reports whether the cell has a tentative distance.
func (c Cell) Scouted() bool { return c.Distance != Unknown }

// CellView is the per-cell state a renderer needs after each step.
type CellView struct {
	ID       int
	X, Y     int
	Stretch  float64
	Explored bool
	Scouted  bool
	Current  bool
	Start    bool
	End      bool
	OnPath   bool
}

// Options configures GridGraph construction.
//
// Stretch sources, in order of precedence:
//   - Stretch: explicit per-cell costs (len must be Width×Height).
//   - Field:   any Sampler; each cell samples Field at its (x, y).
//   - otherwise a noise.Field of LatticeWidth×LatticeHeight at Scale, seeded by Seed.
//
// Impassable: cells whose stretch is ≥ this value are never scouted.
// Default is +Inf (every cell passable).
type Options struct {
	Scale         float64
	LatticeWidth  int
	LatticeHeight int
	Seed          int64
	Field         Sampler
	Stretch       []float64
	Impassable    float64
}

// Option represents a functional option for New.
type Option func(*Options)

// DefaultOptions returns the visualiser defaults: scale 13 on a 256×256
// lattice, seed 0 (fixed default), no obstacles.
func DefaultOptions() Options {
	return Options{
		Scale:         DefaultScale,
		LatticeWidth:  DefaultLatticeWidth,
		LatticeHeight: DefaultLatticeHeight,
		Impassable:    math.Inf(1),
	}
}

// WithScale sets the noise scale. Larger values give smoother costs.
func WithScale(scale float64) Option {
	return func(o *Options) {
		o.Scale = scale
	}
}

// WithLattice sets the noise lattice dimensions.
func WithLattice(width, height int) Option {
	return func(o *Options) {
		o.LatticeWidth = width
		o.LatticeHeight = height
	}
}

// WithSeed sets the noise seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithField samples stretch from f instead of building a noise field.
func WithField(f Sampler) Option {
	return func(o *Options) {
		o.Field = f
	}
}

// WithStretch uses the given row-major stretch values verbatim. The slice
// is copied.
func WithStretch(stretch []float64) Option {
	return func(o *Options) {
		o.Stretch = append([]float64(nil), stretch...)
	}
}

// WithImpassable treats cells with stretch ≥ threshold as walls.
func WithImpassable(threshold float64) Option {
	return func(o *Options) {
		o.Impassable = threshold
	}
}

// offset is a neighbour displacement.
type offset struct {
	dx, dy int
}

// neighborOffsets lists the 8 moves: E, NE, N, NW, W, SW, S, SE.
// Relaxation only replaces a distance on strict improvement, so this order
// decides which predecessor wins among equal-cost candidates.
var neighborOffsets = [8]offset{
	{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// GridGraph is a grid of cells plus incremental Dijkstra state.
// Stretch values are fixed at construction; Explored, Distance and
// Predecessor change only through SetStart, Reset and Step.
type GridGraph struct {
	width, height int
	impassable    float64
	cells         []Cell

	startID, endID, currentID int
	started                   bool
	steps                     int
	explored                  int

	frontier frontierPQ
}
