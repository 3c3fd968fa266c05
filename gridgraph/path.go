package gridgraph

import "fmt"

// FullPath returns the cell ids from id back to the start, following
// predecessor links: id first, start last.
//
// Returns ErrOutOfBounds for an invalid id, ErrNotInitialized before
// SetStart, and ErrNotReachable if id was never relaxed from the start.
// Complexity: O(path length).
func (gg *GridGraph) FullPath(id int) ([]int, error) {
	if err := gg.validateID(id); err != nil {
		return nil, err
	}
	if !gg.started {
		return nil, ErrNotInitialized
	}

	path := []int{id}
	cur := id
	for cur != gg.startID {
		cur = gg.cells[cur].Predecessor
		if cur == NoPredecessor || len(path) >= len(gg.cells) {
			x, y := gg.coordinate(id)
			return nil, fmt.Errorf("%w: (%d,%d)", ErrNotReachable, x, y)
		}
		path = append(path, cur)
	}

	return path, nil
}

// PathCost sums the edge costs along path (as returned by FullPath).
// For a path to an explored cell it equals that cell's distance.
func (gg *GridGraph) PathCost(path []int) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if err := gg.validateID(a); err != nil {
			return 0, err
		}
		if err := gg.validateID(b); err != nil {
			return 0, err
		}
		ax, ay := gg.coordinate(a)
		bx, by := gg.coordinate(b)
		dx, dy := ax-bx, ay-by
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || a == b {
			return 0, fmt.Errorf("%w: cells %d and %d are not neighbours", ErrInvalidParameter, a, b)
		}
		mult := 1.0
		if dx != 0 && dy != 0 {
			mult = DiagonalMultiplier
		}
		total += (gg.cells[a].Stretch + gg.cells[b].Stretch) * mult
	}

	return total, nil
}

// Snapshot returns the per-cell view a renderer paints after each step.
// OnPath is set only once the graph is solved.
func (gg *GridGraph) Snapshot() []CellView {
	onPath := make(map[int]struct{})
	if gg.started && gg.IsSolved() {
		if path, err := gg.FullPath(gg.endID); err == nil {
			for _, id := range path {
				onPath[id] = struct{}{}
			}
		}
	}

	views := make([]CellView, len(gg.cells))
	for i, c := range gg.cells {
		x, y := gg.coordinate(i)
		_, in := onPath[i]
		views[i] = CellView{
			ID:       i,
			X:        x,
			Y:        y,
			Stretch:  c.Stretch,
			Explored: c.Explored,
			Scouted:  c.Scouted(),
			Current:  i == gg.currentID,
			Start:    i == gg.startID,
			End:      i == gg.endID,
			OnPath:   in,
		}
	}

	return views
}
