package gridgraph

// Components partitions the passable cells into 8-connected regions.
// Each component lists its cell ids in BFS order from its lowest id.
// Impassable cells belong to no component.
//
// Time:   O(W·H·8).
// Memory: O(W·H).
func (gg *GridGraph) Components() [][]int {
	seen := make([]bool, len(gg.cells))
	var comps [][]int

	for i0 := range gg.cells {
		if seen[i0] || !gg.Passable(i0) {
			continue
		}
		comps = append(comps, gg.flood(i0, seen))
	}

	return comps
}

// Connected reports whether a path of passable cells joins (x0,y0) and
// (x1,y1). The origin itself may be impassable, as a start cell may be.
// Solve on the same endpoints fails with ErrUnreachableTarget exactly when
// this returns false.
func (gg *GridGraph) Connected(x0, y0, x1, y1 int) (bool, error) {
	from, err := gg.XYToID(x0, y0)
	if err != nil {
		return false, err
	}
	to, err := gg.XYToID(x1, y1)
	if err != nil {
		return false, err
	}
	if from == to {
		return true, nil
	}
	seen := make([]bool, len(gg.cells))
	for _, id := range gg.flood(from, seen) {
		if id == to {
			return true, nil
		}
	}

	return false, nil
}

// flood collects every cell reachable from i0 through passable neighbours,
// marking them in seen.
func (gg *GridGraph) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := gg.coordinate(u)
		for _, d := range neighborOffsets {
			vx, vy := ux+d.dx, uy+d.dy
			if !gg.InBounds(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if seen[vi] || !gg.Passable(vi) {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	return queue
}
