// SPDX-License-Identifier: MIT
// Package: ljbind/potential
//
// errors.go — sentinel errors for the potential package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Energy never panics on user input; option constructors (WithX) panic
//     on meaningless values because those are programmer errors.

package potential

import "errors"

var (
	// ErrNonPositiveDistance is returned when r <= 0. The potential is
	// undefined at zero separation and meaningless for negative distances.
	ErrNonPositiveDistance = errors.New("potential: distance must be > 0")

	// ErrNonFinite is returned when r is NaN/±Inf, or when the computed
	// energy overflows float64 (r vanishingly small compared to σ).
	ErrNonFinite = errors.New("potential: NaN or Inf encountered")

	// ErrInvalidParams is returned when σ or ε is not a finite positive number.
	ErrInvalidParams = errors.New("potential: sigma and epsilon must be finite and > 0")
)
