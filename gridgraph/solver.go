package gridgraph

import (
	"container/heap"
	"fmt"
)

// IsSolved reports whether the end cell has been explored.
func (gg *GridGraph) IsSolved() bool {
	return gg.cells[gg.endID].Explored
}

// State returns Solved once the end cell is explored, otherwise Unsolved.
func (gg *GridGraph) State() State {
	if gg.IsSolved() {
		return Solved
	}

	return Unsolved
}

// Step performs one scout+move cycle:
//
//  1. scout: relax every in-bounds, passable 8-neighbour of the current cell.
//  2. move:  explore the scouted, unexplored cell with the least distance
//     (lowest id on ties) and make it current.
//
// Step on a solved graph does nothing. Returns ErrNotInitialized before
// SetStart and ErrUnreachableTarget when no scouted cell is left to explore.
func (gg *GridGraph) Step() error {
	if !gg.started {
		return ErrNotInitialized
	}
	if gg.IsSolved() {
		return nil
	}

	gg.scout()
	if err := gg.move(); err != nil {
		return err
	}
	gg.steps++

	return nil
}

// Solve steps until the end cell is explored. Every successful Step explores
// a new cell, so Solve returns after at most W×H steps.
func (gg *GridGraph) Solve() error {
	if !gg.started {
		return ErrNotInitialized
	}
	for !gg.IsSolved() {
		if err := gg.Step(); err != nil {
			return err
		}
	}

	return nil
}

// scout relaxes the neighbours of the current cell.
func (gg *GridGraph) scout() {
	cur := gg.currentID
	cx, cy := gg.coordinate(cur)
	from := &gg.cells[cur]

	var (
		tx, ty int
		target int
		mult   float64
		cand   float64
		to     *Cell
	)
	for _, d := range neighborOffsets {
		tx, ty = cx+d.dx, cy+d.dy
		if !gg.InBounds(tx, ty) {
			continue
		}
		target = gg.index(tx, ty)
		if !gg.Passable(target) {
			continue
		}
		to = &gg.cells[target]

		mult = 1
		if d.dx != 0 && d.dy != 0 {
			mult = DiagonalMultiplier
		}
		cand = from.Distance + (from.Stretch+to.Stretch)*mult

		if to.Scouted() && cand >= to.Distance {
			continue
		}
		to.Distance = cand
		to.Predecessor = cur
		heap.Push(&gg.frontier, frontierItem{id: target, dist: cand})
	}
}

// move explores the closest scouted, unexplored cell.
func (gg *GridGraph) move() error {
	var item frontierItem
	for gg.frontier.Len() > 0 {
		item = heap.Pop(&gg.frontier).(frontierItem)
		c := &gg.cells[item.id]
		if c.Explored || c.Distance != item.dist {
			continue
		}
		c.Explored = true
		gg.explored++
		gg.currentID = item.id

		return nil
	}

	sx, sy := gg.coordinate(gg.startID)
	ex, ey := gg.coordinate(gg.endID)

	return fmt.Errorf("%w: (%d,%d) from (%d,%d) after exploring %d cells",
		ErrUnreachableTarget, ex, ey, sx, sy, gg.explored)
}
