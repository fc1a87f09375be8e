// SPDX-License-Identifier: MIT

// Package potential evaluates the Lennard-Jones pair potential.
//
// 🚀 What is the Lennard-Jones potential?
//
//	A two-parameter model of the interaction between two neutral particles
//	at separation r:
//
//	  E(r) = 4·ε·((σ/r)^12 − (σ/r)^6)
//
//	σ is the distance at which E crosses zero and ε is the depth of the
//	attractive well. The r^-12 term models short-range repulsion, the
//	r^-6 term the longer-range (dispersion) attraction.
//
// ✨ Key features:
//   - pure, deterministic Energy(r, p) with sentinel errors instead of panics
//   - explicit Params value (no package-level mutable constants)
//   - functional options for NewParams (WithSigma, WithEpsilon)
//   - analytic anchors: MinimumDistance (2^(1/6)·σ) and WellDepth (−ε)
//
// ⚙️ Usage:
//
//	p := potential.DefaultParams() // argon: σ=3.41e-10 m, ε=1.65e-21 J
//	e, err := potential.Energy(4.1e-10, p)
//	if err != nil {
//	  // ErrNonPositiveDistance, ErrNonFinite or ErrInvalidParams
//	}
//
// Units are SI throughout: metres in, joules out.
package potential
