// SPDX-License-Identifier: MIT
// Package: ljbind/binding
//
// types.go — aggregation result and per-pair contributions.

package binding

// Result is the outcome of Aggregate.
//
// Fields:
//   - Pairings  — number of distances consumed.
//   - Objects   — object count implied by Pairings.
//   - Distances — the input distances (m), in input order.
//   - Energies  — E(Distances[k]) (J), same order.
//   - Total     — Σ Energies (J).
type Result struct {
	Pairings  int       `yaml:"pairings"`
	Objects   int       `yaml:"objects"`
	Distances []float64 `yaml:"distances,flow"`
	Energies  []float64 `yaml:"energies,flow"`
	Total     float64   `yaml:"total_energy_j"`
}

// Contribution is the energy of one labelled pair.
type Contribution struct {
	I, J     int     // 1-based object labels, I < J
	Distance float64 // m
	Energy   float64 // J
}
