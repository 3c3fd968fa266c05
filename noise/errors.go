package noise

import "errors"

var (
	// ErrInvalidParameter indicates a non-positive lattice dimension or scale.
	ErrInvalidParameter = errors.New("noise: invalid parameter")
	// ErrOutOfLatticeBounds indicates a sample point whose surrounding lattice
	// corners fall outside the allocated lattice.
	ErrOutOfLatticeBounds = errors.New("noise: sample outside lattice bounds")
	// ErrStretchRange indicates a derived stretch value outside [0,1].
	ErrStretchRange = errors.New("noise: stretch outside [0,1]")
)
