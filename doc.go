// Package dijkstravis computes shortest paths across a grid whose cell costs
// come from a procedurally generated noise field, one search step at a time.
//
// Layout:
//
//	noise/           — seeded 2D gradient-noise lattice and the stretch (cost) derivation
//	gridgraph/       — incremental Dijkstra over the grid, path reconstruction, render snapshot
//	cmd/dijkstravis/ — terminal driver: flags, tcell painting, optional chime (-tags sound)
//
// Quick example:
//
//	gg, _ := gridgraph.New(100, 60, gridgraph.WithScale(13))
//	_ = gg.SetStart(50, 30)
//	_ = gg.SetEnd(75, 30)
//	for !gg.IsSolved() {
//	    _ = gg.Step() // repaint from gg.Snapshot() between steps
//	}
//	path, _ := gg.FullPath(gg.End())
package dijkstravis
