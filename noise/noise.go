package noise

import (
	"fmt"
	"math"
	"math/rand"
)

// NewField allocates a width×height lattice of random unit gradients.
// Coordinates passed to Sample are divided by scale before lattice lookup.
//
// Returns ErrInvalidParameter if width or height is not positive, or if
// scale is not a finite positive number.
//
// Complexity: O(width×height).
func NewField(width, height int, scale float64, opts ...Option) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: lattice %dx%d", ErrInvalidParameter, width, height)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, fmt.Errorf("%w: scale=%v", ErrInvalidParameter, scale)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	f := &Field{
		width:     width,
		height:    height,
		scale:     scale,
		seed:      seed,
		gradients: make([]Vec2, width*height),
	}
	f.fill(rand.New(rand.NewSource(seed)))

	return f, nil
}

// fill draws one unit vector per lattice point, uniformly over the circle.
func (f *Field) fill(rng *rand.Rand) {
	var phi float64
	for i := range f.gradients {
		phi = 2 * math.Pi * rng.Float64()
		f.gradients[i] = Vec2{X: math.Cos(phi), Y: math.Sin(phi)}
	}
}

// Regenerate returns a fresh Field with the same dimensions and scale but a
// lattice drawn from seed. The receiver is left untouched, so a solver that
// still holds it keeps seeing the old values.
func (f *Field) Regenerate(seed int64) (*Field, error) {
	return NewField(f.width, f.height, f.scale, WithSeed(seed))
}

// Gradient returns the unit gradient stored at lattice point (ix, iy).
func (f *Field) Gradient(ix, iy int) (Vec2, error) {
	if ix < 0 || ix >= f.width || iy < 0 || iy >= f.height {
		return Vec2{}, fmt.Errorf("%w: lattice point (%d,%d) in %dx%d",
			ErrOutOfLatticeBounds, ix, iy, f.width, f.height)
	}

	return f.gradients[iy*f.width+ix], nil
}

// Sample evaluates the field at (x, y).
//
// The result is typically within [-MaxAmplitude, MaxAmplitude]. Sampling
// needs the lattice corners (⌊x/s⌋, ⌊y/s⌋) through (⌊x/s⌋+1, ⌊y/s⌋+1);
// if any of them is outside the lattice ErrOutOfLatticeBounds is returned.
//
// Complexity: O(1).
func (f *Field) Sample(x, y float64) (float64, error) {
	lx := x / f.scale
	ly := y / f.scale
	fx := math.Floor(lx)
	fy := math.Floor(ly)

	// Written as a positive range test so NaN coordinates are rejected too.
	if !(fx >= 0 && fy >= 0 && fx+1 < float64(f.width) && fy+1 < float64(f.height)) {
		return 0, fmt.Errorf("%w: point (%v,%v) at scale %v needs corner (%v,%v)",
			ErrOutOfLatticeBounds, x, y, f.scale, fx+1, fy+1)
	}
	ix, iy := int(fx), int(fy)
	i := iy*f.width + ix

	g00 := f.gradients[i]
	g10 := f.gradients[i+1]
	g01 := f.gradients[i+f.width]
	g11 := f.gradients[i+f.width+1]

	u := lx - fx
	v := ly - fy

	d00 := g00.Dot(Vec2{X: u, Y: v})
	d10 := g10.Dot(Vec2{X: u - 1, Y: v})
	d01 := g01.Dot(Vec2{X: u, Y: v - 1})
	d11 := g11.Dot(Vec2{X: u - 1, Y: v - 1})

	su := smoothstep(u)
	top := lerp(d00, d10, su)
	bottom := lerp(d01, d11, su)

	return lerp(top, bottom, smoothstep(v)), nil
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// smoothstep is the cubic Hermite fade t²(3-2t).
func smoothstep(t float64) float64 { return t * t * (3 - 2*t) }
