// SPDX-License-Identifier: MIT
// Package: ljbind/selfcheck
//
// selfcheck.go — reference-point regression check.

package selfcheck

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ljbind/potential"
)

// Reference point defaults.
const (
	DefaultDistance  = 6.82e-10 // m, twice the argon σ
	DefaultExpected  = -1.0e-22 // J
	DefaultTolerance = 1e-23    // J, absolute
)

// Verdict is the outcome of Check.
type Verdict struct {
	Distance  float64 `yaml:"distance_m"`
	Expected  float64 `yaml:"expected_j"`
	Computed  float64 `yaml:"computed_j"`
	Delta     float64 `yaml:"delta_j"`
	Tolerance float64 `yaml:"tolerance_j"`
	Trusted   bool    `yaml:"trusted"`
	Err       error   `yaml:"-"`
}

// Option customizes the reference point used by Check.
type Option func(*options)

type options struct {
	distance  float64
	expected  float64
	tolerance float64
}

// WithReference replaces the reference separation r (m) and its expected
// energy (J). Panics unless r is finite and > 0 and expected is finite.
func WithReference(r, expected float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("selfcheck: WithReference(r<=0 or non-finite)")
	}
	if math.IsNaN(expected) || math.IsInf(expected, 0) {
		panic("selfcheck: WithReference(expected non-finite)")
	}
	return func(o *options) {
		o.distance, o.expected = r, expected
	}
}

// WithTolerance replaces the absolute tolerance (J). Panics unless tol is
// finite and > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("selfcheck: WithTolerance(tol<=0 or non-finite)")
	}
	return func(o *options) {
		o.tolerance = tol
	}
}

// Check evaluates the potential at the reference point and reports whether
// |computed − expected| < tolerance. An evaluation error yields an untrusted
// verdict carrying the error; Check never panics on bad params.
func Check(p potential.Params, opts ...Option) Verdict {
	o := options{
		distance:  DefaultDistance,
		expected:  DefaultExpected,
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	v := Verdict{Distance: o.distance, Expected: o.expected, Tolerance: o.tolerance}
	e, err := potential.Energy(o.distance, p)
	if err != nil {
		v.Err = err
		v.Delta = math.Inf(1)
		return v
	}
	v.Computed = e
	v.Delta = math.Abs(e - o.expected)
	v.Trusted = v.Delta < o.tolerance

	return v
}

// String renders the verdict as one human-readable line.
func (v Verdict) String() string {
	switch {
	case v.Err != nil:
		return fmt.Sprintf("WARNING: self-check could not evaluate E(%g m): %v; the potential function is broken and results should not be trusted", v.Distance, v.Err)
	case v.Trusted:
		return fmt.Sprintf("Self-check passed: E(%g m) = %g J (expected %g J); results can be trusted", v.Distance, v.Computed, v.Expected)
	default:
		return fmt.Sprintf("WARNING: self-check failed: E(%g m) = %g J, expected %g J (|Δ| = %g J >= %g J); the potential function is broken and results should not be trusted",
			v.Distance, v.Computed, v.Expected, v.Delta, v.Tolerance)
	}
}
