package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dijkstravis/noise"
)

// New builds a width×height GridGraph. Each cell's stretch is derived once
// here (see Options for the sources) and never changes afterwards.
//
// Defaults: start=0, end=1 (0 on a 1×1 grid), current=start. No cell is
// explored until SetStart.
//
// Returns ErrInvalidParameter, ErrOutOfLatticeBounds or ErrStretchRange on
// bad configuration.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidParameter, width, height)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(cfg.Impassable) {
		return nil, fmt.Errorf("%w: impassable threshold is NaN", ErrInvalidParameter)
	}

	stretch, err := buildStretch(width, height, cfg)
	if err != nil {
		return nil, err
	}

	n := width * height
	gg := &GridGraph{
		width:      width,
		height:     height,
		impassable: cfg.Impassable,
		cells:      make([]Cell, n),
	}
	for id := 0; id < n; id++ {
		gg.cells[id] = Cell{
			ID:          id,
			Stretch:     stretch[id],
			Distance:    Unknown,
			Predecessor: NoPredecessor,
		}
	}
	gg.startID = 0
	if n > 1 {
		gg.endID = 1
	}
	gg.currentID = gg.startID

	return gg, nil
}

// buildStretch resolves the per-cell stretch values from cfg.
func buildStretch(width, height int, cfg Options) ([]float64, error) {
	n := width * height

	if cfg.Stretch != nil {
		if len(cfg.Stretch) != n {
			return nil, fmt.Errorf("%w: %d stretch values for %d cells", ErrInvalidParameter, len(cfg.Stretch), n)
		}
		for id, s := range cfg.Stretch {
			if !(s >= 0 && s <= 1) {
				return nil, fmt.Errorf("%w: cell %d stretch=%v", ErrStretchRange, id, s)
			}
		}
		return cfg.Stretch, nil
	}

	field := cfg.Field
	if field == nil {
		if !(cfg.Scale > 0) {
			return nil, fmt.Errorf("%w: scale=%v", ErrInvalidParameter, cfg.Scale)
		}
		f, err := noise.NewField(cfg.LatticeWidth, cfg.LatticeHeight, cfg.Scale, noise.WithSeed(cfg.Seed))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
		}
		field = f
	}

	out := make([]float64, n)
	var x, y int
	for id := 0; id < n; id++ {
		x, y = id%width, id/width
		raw, err := field.Sample(float64(x), float64(y))
		if err != nil {
			return nil, fmt.Errorf("gridgraph: sampling cell (%d,%d): %w", x, y, err)
		}
		s, err := noise.StretchChecked(raw)
		if err != nil {
			return nil, fmt.Errorf("gridgraph: cell (%d,%d): %w", x, y, err)
		}
		out[id] = s
	}

	return out, nil
}

// Width returns the number of columns.
func (gg *GridGraph) Width() int { return gg.width }

// Height returns the number of rows.
func (gg *GridGraph) Height() int { return gg.height }

// Len returns the number of cells.
func (gg *GridGraph) Len() int { return len(gg.cells) }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.width && y >= 0 && y < gg.height
}

// XYToID maps (x,y) to its row-major id x + y·Width.
func (gg *GridGraph) XYToID(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, gg.width, gg.height)
	}

	return gg.index(x, y), nil
}

// IDToXY maps a row-major id back to (x,y).
func (gg *GridGraph) IDToXY(id int) (x, y int, err error) {
	if err = gg.validateID(id); err != nil {
		return 0, 0, err
	}
	x, y = gg.coordinate(id)

	return x, y, nil
}

func (gg *GridGraph) index(x, y int) int { return y*gg.width + x }

func (gg *GridGraph) coordinate(id int) (x, y int) { return id % gg.width, id / gg.width }

func (gg *GridGraph) validateID(id int) error {
	if id < 0 || id >= len(gg.cells) {
		return fmt.Errorf("%w: id %d not in [0,%d)", ErrOutOfBounds, id, len(gg.cells))
	}

	return nil
}

// SetStart makes (x,y) the search origin: solve state is reset, the cell is
// marked explored with distance 0 and becomes the current cell.
func (gg *GridGraph) SetStart(x, y int) error {
	id, err := gg.XYToID(x, y)
	if err != nil {
		return err
	}
	gg.Reset()

	c := &gg.cells[id]
	c.Explored = true
	c.Distance = 0
	gg.explored = 1
	gg.startID = id
	gg.currentID = id
	gg.started = true

	return nil
}

// SetEnd selects the target cell. No solver state changes.
func (gg *GridGraph) SetEnd(x, y int) error {
	id, err := gg.XYToID(x, y)
	if err != nil {
		return err
	}
	gg.endID = id

	return nil
}

// Reset clears every cell's explored flag, distance and predecessor, and
// forgets the start. Stretch values are kept.
func (gg *GridGraph) Reset() {
	for i := range gg.cells {
		gg.cells[i].Explored = false
		gg.cells[i].Distance = Unknown
		gg.cells[i].Predecessor = NoPredecessor
	}
	gg.frontier = gg.frontier[:0]
	gg.currentID = gg.startID
	gg.started = false
	gg.steps = 0
	gg.explored = 0
}

// Start returns the start cell id.
func (gg *GridGraph) Start() int { return gg.startID }

// End returns the end cell id.
func (gg *GridGraph) End() int { return gg.endID }

// Current returns the most recently explored cell id.
func (gg *GridGraph) Current() int { return gg.currentID }

// Steps returns the number of completed Step calls since the last SetStart.
func (gg *GridGraph) Steps() int { return gg.steps }

// ExploredCount returns the number of explored cells.
func (gg *GridGraph) ExploredCount() int { return gg.explored }

// Cell returns a copy of the cell with the given id.
func (gg *GridGraph) Cell(id int) (Cell, error) {
	if err := gg.validateID(id); err != nil {
		return Cell{}, err
	}

	return gg.cells[id], nil
}

// Cells returns a copy of all cells in id order.
func (gg *GridGraph) Cells() []Cell {
	out := make([]Cell, len(gg.cells))
	copy(out, gg.cells)

	return out
}

// Distance returns the tentative distance of id (Unknown if not scouted).
func (gg *GridGraph) Distance(id int) (float64, error) {
	if err := gg.validateID(id); err != nil {
		return Unknown, err
	}

	return gg.cells[id].Distance, nil
}

// Passable reports whether the cell can be entered under the configured
// impassable threshold. Invalid ids are not passable.
func (gg *GridGraph) Passable(id int) bool {
	if id < 0 || id >= len(gg.cells) {
		return false
	}

	return gg.cells[id].Stretch < gg.impassable
}
