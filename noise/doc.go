// Package noise provides a deterministic 2D gradient-noise field and the
// "stretch" derivation that turns raw noise into per-cell traversal cost.
//
// What:
//
//   - Field holds a W×H lattice of random unit gradient vectors, indexed
//     row-major and fixed at construction.
//   - Sample(x, y) divides the point by the field scale, locates the lattice
//     cell, dots each corner gradient with the corner→point offset and blends
//     the four dot products with smoothstep weights (x first, then y).
//   - Stretch maps a raw sample n to sign(n)·sqrt(|n|)/2 + 0.5.
//
// Why:
//
//   - A continuous, smooth cost landscape for grid path-finding: larger
//     scale yields lower-frequency variation.
//
// Range:
//
//   - With unit gradients and smoothstep blending the raw value is bounded
//     by MaxAmplitude (√2/2, reached at a cell centre), so Stretch always
//     lands inside [0.0796, 0.9205]. StretchChecked still verifies the [0,1]
//     contract so a foreign Sampler cannot leak bad costs downstream.
//
// Determinism:
//
//   - The lattice is generated from a seeded math/rand source; seed 0 maps
//     to a fixed default seed. Same seed ⇒ same lattice ⇒ same samples.
//   - A Field is immutable after NewField. Regenerate returns a new Field.
//
// Complexity:
//
//   - NewField: O(W×H) time and memory.
//   - Sample:   O(1).
//
// Errors:
//
//   - ErrInvalidParameter:   non-positive lattice size or scale, NaN inputs.
//   - ErrOutOfLatticeBounds: the sample needs lattice points outside
//     [0,W)×[0,H); keep coordinates below scale·(W-1) and scale·(H-1).
//   - ErrStretchRange:       derived stretch left [0,1].
package noise
