package noise

import "math"

// MaxAmplitude is the largest magnitude Sample can return for a lattice of
// unit gradients blended with smoothstep weights.
const MaxAmplitude = math.Sqrt2 / 2

// defaultSeed replaces a zero seed so that the zero Options value is still
// reproducible.
const defaultSeed int64 = 1

// Vec2 is a plain 2D vector.
type Vec2 struct {
	X, Y float64
}

// Dot returns the dot product v·o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Options configures lattice generation.
type Options struct {
	// Seed drives the gradient generator. Zero selects a fixed default.
	Seed int64
}

// Option mutates Options.
type Option func(*Options)

// WithSeed sets the generator seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns Options with Seed=0 (the fixed default seed).
func DefaultOptions() Options {
	return Options{Seed: 0}
}

// Field is an immutable lattice of unit gradient vectors sampled as a
// continuous scalar field.
type Field struct {
	width, height int
	scale         float64
	seed          int64
	gradients     []Vec2 // row-major: gradients[iy*width+ix]
}

// Width returns the lattice width.
func (f *Field) Width() int { return f.width }

// Height returns the lattice height.
func (f *Field) Height() int { return f.height }

// Scale returns the spatial scale factor.
func (f *Field) Scale() float64 { return f.scale }

// Seed returns the effective seed the lattice was generated from.
func (f *Field) Seed() int64 { return f.seed }
