// SPDX-License-Identifier: MIT
// Package: ljbind/potential
//
// types.go — Params, defaults and functional options.

package potential

import (
	"fmt"
	"math"
)

// Argon parameters, the reference system of this tool.
const (
	// DefaultSigma is the zero-crossing distance σ in metres.
	DefaultSigma = 3.41e-10

	// DefaultEpsilon is the well depth ε in joules.
	DefaultEpsilon = 1.65e-21
)

// Params holds the two Lennard-Jones parameters.
//
// Fields:
//   - Sigma   — distance (m) at which E(σ) = 0.
//   - Epsilon — depth (J) of the potential well, E(r_min) = −ε.
//
// Params is a plain value; copy it freely.
type Params struct {
	Sigma   float64 `yaml:"sigma"`
	Epsilon float64 `yaml:"epsilon"`
}

// DefaultParams returns the argon parameters (DefaultSigma, DefaultEpsilon).
func DefaultParams() Params {
	return Params{Sigma: DefaultSigma, Epsilon: DefaultEpsilon}
}

// Validate reports ErrInvalidParams unless both σ and ε are finite and > 0.
// Complexity: O(1).
func (p Params) Validate() error {
	if !positiveFinite(p.Sigma) {
		return fmt.Errorf("sigma=%g: %w", p.Sigma, ErrInvalidParams)
	}
	if !positiveFinite(p.Epsilon) {
		return fmt.Errorf("epsilon=%g: %w", p.Epsilon, ErrInvalidParams)
	}

	return nil
}

// Option customizes Params built by NewParams.
type Option func(*Params)

// NewParams starts from DefaultParams and applies opts in order (last wins).
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// WithSigma overrides σ. Panics unless sigma is finite and > 0.
func WithSigma(sigma float64) Option {
	if !positiveFinite(sigma) {
		panic("potential: WithSigma(sigma<=0 or non-finite)")
	}
	return func(p *Params) {
		p.Sigma = sigma
	}
}

// WithEpsilon overrides ε. Panics unless epsilon is finite and > 0.
func WithEpsilon(epsilon float64) Option {
	if !positiveFinite(epsilon) {
		panic("potential: WithEpsilon(epsilon<=0 or non-finite)")
	}
	return func(p *Params) {
		p.Epsilon = epsilon
	}
}

// positiveFinite reports whether x is a finite number strictly above zero.
func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
