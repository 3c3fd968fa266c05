package noise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstravis/noise"
)

func TestStretch(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0.5},
		{1, 1},
		{-1, 0},
		{0.25, 0.75},
		{-0.25, 0.25},
		{0.04, 0.6},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, noise.Stretch(tc.in), eps, "Stretch(%v)", tc.in)
	}
}

// TestStretch_Symmetric checks Stretch(-n) mirrors Stretch(n) around 0.5.
func TestStretch_Symmetric(t *testing.T) {
	for n := 0.0; n <= 1; n += 0.05 {
		assert.InDelta(t, 1.0, noise.Stretch(n)+noise.Stretch(-n), eps)
	}
}

// TestStretchChecked_Range verifies out-of-range values are surfaced, not clamped.
func TestStretchChecked_Range(t *testing.T) {
	s, err := noise.StretchChecked(0.3)
	require.NoError(t, err)
	assert.InDelta(t, noise.Stretch(0.3), s, eps)

	s, err = noise.StretchChecked(1.21)
	assert.ErrorIs(t, err, noise.ErrStretchRange)
	assert.InDelta(t, 1.05, s, eps)

	s, err = noise.StretchChecked(-1.44)
	assert.ErrorIs(t, err, noise.ErrStretchRange)
	assert.InDelta(t, -0.1, s, eps)

	_, err = noise.StretchChecked(math.NaN())
	assert.ErrorIs(t, err, noise.ErrStretchRange)
}

// TestStretch_DefaultConfigurationInRange samples a 100×60 grid at scale 13
// on a 256×256 lattice, the visualiser defaults.
func TestStretch_DefaultConfigurationInRange(t *testing.T) {
	lo := noise.Stretch(-noise.MaxAmplitude)
	hi := noise.Stretch(noise.MaxAmplitude)
	require.Greater(t, lo, 0.0)
	require.Less(t, hi, 1.0)

	for seed := int64(1); seed <= 5; seed++ {
		f, err := noise.NewField(256, 256, 13, noise.WithSeed(seed))
		require.NoError(t, err)
		for y := 0; y < 60; y++ {
			for x := 0; x < 100; x++ {
				raw, err := f.Sample(float64(x), float64(y))
				require.NoError(t, err)
				s, err := noise.StretchChecked(raw)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, s, lo-eps)
				assert.LessOrEqual(t, s, hi+eps)
			}
		}
	}
}
