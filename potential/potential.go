// SPDX-License-Identifier: MIT
// Package: ljbind/potential
//
// potential.go — the Lennard-Jones pair energy.

package potential

import (
	"math"
)

// Energy returns the Lennard-Jones binding energy (J) of one pair at
// separation r (m):
//
//	E(r) = 4·ε·((σ/r)^12 − (σ/r)^6)
//
// Errors:
//   - ErrInvalidParams       — p fails Validate.
//   - ErrNonFinite           — r is NaN/±Inf, or the result overflows.
//   - ErrNonPositiveDistance — r <= 0.
//
// Negative energies are attractive, positive ones repulsive.
// Complexity: O(1), no allocation.
func Energy(r float64, p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, ErrNonFinite
	}
	if r <= 0 {
		return 0, ErrNonPositiveDistance
	}

	// (σ/r)^6 by repeated squaring; (σ/r)^12 is its square.
	sr := p.Sigma / r
	sr2 := sr * sr
	sr6 := sr2 * sr2 * sr2
	sr12 := sr6 * sr6

	e := 4 * p.Epsilon * (sr12 - sr6)
	if math.IsInf(e, 0) || math.IsNaN(e) {
		return 0, ErrNonFinite
	}

	return e, nil
}

// MinimumDistance returns r_min = 2^(1/6)·σ, where E reaches its minimum −ε.
func MinimumDistance(p Params) float64 {
	return math.Pow(2, 1.0/6.0) * p.Sigma
}

// WellDepth returns E(r_min) = −ε.
func WellDepth(p Params) float64 {
	return -p.Epsilon
}
