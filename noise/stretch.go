package noise

import (
	"fmt"
	"math"
)

// Stretch maps a raw noise value n to a traversal cost:
//
//	n' = sign(n)·sqrt(|n|)
//	stretch = n'/2 + 0.5
//
// The square root pulls extreme values towards the middle while keeping the
// sign. The result is not clamped.
func Stretch(n float64) float64 {
	switch {
	case n > 0:
		n = math.Sqrt(n)
	case n < 0:
		n = -math.Sqrt(-n)
	}

	return n/2 + 0.5
}

// StretchChecked is Stretch followed by a [0,1] range check. Values outside
// the range (or NaN) are returned alongside ErrStretchRange rather than
// clamped.
func StretchChecked(n float64) (float64, error) {
	s := Stretch(n)
	if !(s >= 0 && s <= 1) {
		return s, fmt.Errorf("%w: raw=%v stretch=%v", ErrStretchRange, n, s)
	}

	return s, nil
}
