// SPDX-License-Identifier: MIT
package potential_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ljbind/potential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnergy_ReferencePoint checks the literal self-check scenario:
// E(6.82e-10 m) ≈ −1.0e-22 J within 1e-23 J.
func TestEnergy_ReferencePoint(t *testing.T) {
	t.Parallel()

	e, err := potential.Energy(6.82e-10, potential.DefaultParams())
	require.NoError(t, err)
	assert.InDelta(t, -1.0e-22, e, 1e-23)
}

// TestEnergy_AnalyticAnchors verifies the zero crossing at σ and the well
// depth −ε at 2^(1/6)·σ.
func TestEnergy_AnalyticAnchors(t *testing.T) {
	t.Parallel()
	p := potential.DefaultParams()

	e, err := potential.Energy(p.Sigma, p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e, "E(σ) must be exactly zero")

	e, err = potential.Energy(potential.MinimumDistance(p), p)
	require.NoError(t, err)
	assert.InDelta(t, potential.WellDepth(p), e, 1e-33, "E(r_min) must equal −ε")
}

// TestEnergy_Sign covers the repulsive and attractive branches.
func TestEnergy_Sign(t *testing.T) {
	t.Parallel()
	p := potential.DefaultParams()

	tests := []struct {
		name     string
		r        float64
		positive bool
	}{
		{"inside sigma is repulsive", 2e-10, true},
		{"just inside sigma", 3.0e-10, true},
		{"beyond sigma is attractive", 4.1e-10, false},
		{"far tail is attractive", 1e-9, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e, err := potential.Energy(tc.r, p)
			require.NoError(t, err)
			assert.Equal(t, tc.positive, e > 0, "E(%g)=%g", tc.r, e)
		})
	}
}

// TestEnergy_Deterministic repeats the evaluation and demands bit-identical
// finite results.
func TestEnergy_Deterministic(t *testing.T) {
	t.Parallel()
	p := potential.DefaultParams()

	for _, r := range []float64{1e-10, 2e-10, 3.41e-10, 4.1e-10, 6.82e-10, 1e-8} {
		first, err := potential.Energy(r, p)
		require.NoError(t, err)
		require.False(t, math.IsNaN(first) || math.IsInf(first, 0), "E(%g) must be finite", r)
		for i := 0; i < 5; i++ {
			again, err := potential.Energy(r, p)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

// TestEnergy_Errors covers the rejected inputs.
func TestEnergy_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    float64
		p    potential.Params
		want error
	}{
		{"zero distance", 0, potential.DefaultParams(), potential.ErrNonPositiveDistance},
		{"negative distance", -1e-10, potential.DefaultParams(), potential.ErrNonPositiveDistance},
		{"NaN distance", math.NaN(), potential.DefaultParams(), potential.ErrNonFinite},
		{"+Inf distance", math.Inf(1), potential.DefaultParams(), potential.ErrNonFinite},
		{"overflow", 1e-300, potential.DefaultParams(), potential.ErrNonFinite},
		{"zero sigma", 1e-10, potential.Params{Sigma: 0, Epsilon: 1}, potential.ErrInvalidParams},
		{"negative epsilon", 1e-10, potential.Params{Sigma: 1, Epsilon: -1}, potential.ErrInvalidParams},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := potential.Energy(tc.r, tc.p)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewParams_Options verifies defaults, overrides and panicking constructors.
func TestNewParams_Options(t *testing.T) {
	t.Parallel()

	assert.Equal(t, potential.DefaultParams(), potential.NewParams())

	p := potential.NewParams(potential.WithSigma(2.5e-10), potential.WithEpsilon(1e-21))
	assert.Equal(t, 2.5e-10, p.Sigma)
	assert.Equal(t, 1e-21, p.Epsilon)
	require.NoError(t, p.Validate())

	assert.Panics(t, func() { potential.WithSigma(0) })
	assert.Panics(t, func() { potential.WithEpsilon(math.NaN()) })
}
