package gridgraph

import (
	"errors"

	"github.com/katalvlaran/dijkstravis/noise"
)

var (
	// ErrInvalidParameter indicates non-positive grid dimensions or scale, or
	// a stretch slice of the wrong length.
	ErrInvalidParameter = errors.New("gridgraph: invalid parameter")
	// ErrOutOfBounds indicates a coordinate or cell id outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate or id out of bounds")
	// ErrNotInitialized indicates the solver was driven before SetStart.
	ErrNotInitialized = errors.New("gridgraph: start cell not set")
	// ErrNotReachable indicates a path was requested for a cell with no
	// predecessor chain to the start.
	ErrNotReachable = errors.New("gridgraph: cell not reached from start")
	// ErrUnreachableTarget indicates the frontier ran dry before the end cell
	// was explored.
	ErrUnreachableTarget = errors.New("gridgraph: end cell unreachable")

	// ErrOutOfLatticeBounds is noise.ErrOutOfLatticeBounds, re-exported so
	// callers need not import noise to match it.
	ErrOutOfLatticeBounds = noise.ErrOutOfLatticeBounds
	// ErrStretchRange is noise.ErrStretchRange.
	ErrStretchRange = noise.ErrStretchRange
)
