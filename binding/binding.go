// SPDX-License-Identifier: MIT
// Package: ljbind/binding
//
// binding.go — total binding energy and its report.

package binding

import (
	"fmt"

	"github.com/katalvlaran/ljbind/pairing"
	"github.com/katalvlaran/ljbind/potential"
)

// Aggregate validates the pairing count of ds and sums the pair energies.
//
// Steps:
//  1. pairing.Validate(len(ds)); on failure the error is returned as is
//     (errors.Is(err, pairing.ErrInvalidGeometry)) and no total exists.
//  2. E(r) for every r in ds, unconditionally; duplicates count each time.
//  3. Total = Σ E(r).
//
// Errors: pairing errors, or a potential error wrapped with the 1-based
// position of the offending distance.
// Complexity: O(len(ds)).
func Aggregate(ds []float64, p potential.Params) (Result, error) {
	n, err := pairing.Validate(len(ds))
	if err != nil {
		return Result{}, err
	}

	energies := make([]float64, len(ds))
	var total float64
	for k, r := range ds {
		e, err := potential.Energy(r, p)
		if err != nil {
			return Result{}, fmt.Errorf("binding: distance %d (%g m): %w", k+1, r, err)
		}
		energies[k] = e
		total += e
	}

	out := make([]float64, len(ds))
	copy(out, ds)

	return Result{
		Pairings:  len(ds),
		Objects:   n,
		Distances: out,
		Energies:  energies,
		Total:     total,
	}, nil
}

// Sum returns Σ E(r) over ds without the pairing check.
// Errors: the first potential error, wrapped with its position.
func Sum(ds []float64, p potential.Params) (float64, error) {
	var total float64
	for k, r := range ds {
		e, err := potential.Energy(r, p)
		if err != nil {
			return 0, fmt.Errorf("binding: distance %d (%g m): %w", k+1, r, err)
		}
		total += e
	}

	return total, nil
}

// Report renders the pairing count and the total energy, choosing the
// singular wording when exactly one pairing was summed.
func (r Result) Report() []string {
	noun := "pairings"
	verb := "are"
	if r.Pairings == 1 {
		noun, verb = "pairing", "is"
	}

	return []string{
		fmt.Sprintf("There %s %d %s in this list", verb, r.Pairings, noun),
		fmt.Sprintf("The total binding energy of the %d %s is %g J", r.Pairings, noun, r.Total),
	}
}

// Contributions labels every distance with its object pair (1-2, 1-3, ...).
// The labelling assumes the list follows pairing.PairIndex order.
func (r Result) Contributions() []Contribution {
	out := make([]Contribution, 0, len(r.Energies))
	for k := range r.Energies {
		i, j, err := pairing.PairIndex(k, r.Objects)
		if err != nil {
			// Result was not produced by Aggregate.
			break
		}
		out = append(out, Contribution{I: i, J: j, Distance: r.Distances[k], Energy: r.Energies[k]})
	}

	return out
}

// String renders the contribution as "r1_2 = 4.1e-10 m -> E = ... J".
func (c Contribution) String() string {
	return fmt.Sprintf("r%d_%d = %g m -> E = %g J", c.I, c.J, c.Distance, c.Energy)
}
