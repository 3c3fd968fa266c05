// Package gridgraph runs an incremental, step-by-step Dijkstra search over a
// rectangular grid whose cell costs come from a gradient-noise field.
//
// What:
//
//   - GridGraph owns Width×Height cells in row-major order (id = x + y·Width).
//   - Every cell carries a fixed "stretch" in [0,1], sampled from a
//     noise.Field (or any Sampler) and passed through noise.Stretch.
//   - Step performs one scout+move cycle: relax the up-to-8 neighbours of the
//     current cell, then finalise the closest scouted, unexplored cell.
//   - Solve repeats Step until the end cell is explored.
//   - FullPath walks predecessor links from any scouted cell back to start.
//   - Snapshot exposes per-cell state for renderers polling after each step.
//
// Edge cost:
//
//	cost(a→b) = (stretch[a] + stretch[b]) · m,   m = √2 diagonal, 1 orthogonal
//
// State machine:
//
//	Unsolved ──Step…──▶ Solved   (terminal; further Steps are no-ops)
//
// Determinism:
//
//   - The next cell to explore is the scouted, unexplored cell with the
//     smallest tentative distance; ties go to the lowest cell id. The
//     frontier is a min-heap keyed on (distance, id), which selects exactly
//     the cell a linear scan in id order would.
//
// Complexity:
//
//   - New:      O(W×H) samples.
//   - Step:     O(log(W×H)) amortised.
//   - Solve:    O(W×H·log(W×H)).
//   - FullPath: O(path length).
//
// Errors:
//
//   - ErrInvalidParameter:   non-positive dimensions or scale, bad stretch slice.
//   - ErrOutOfBounds:        coordinate or id outside the grid.
//   - ErrOutOfLatticeBounds: the grid samples beyond the noise lattice.
//   - ErrStretchRange:       a derived stretch left [0,1].
//   - ErrNotInitialized:     Step/Solve/FullPath before SetStart.
//   - ErrNotReachable:       FullPath on a cell never relaxed.
//   - ErrUnreachableTarget:  frontier exhausted before the end was explored.
//
// Thread safety:
//
//   - None. A GridGraph is driven by a single caller sequence.
package gridgraph
