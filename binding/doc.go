// SPDX-License-Identifier: MIT

// Package binding sums Lennard-Jones pair energies over a distance list.
//
// Aggregate first checks that the number of distances is a triangular number
// (see package pairing): a total over an incomplete or corrupt list would look
// plausible while being wrong, so no total is produced in that case. Every
// distance then contributes exactly once, duplicates included.
//
//	res, err := binding.Aggregate([]float64{4.1e-10, 2e-10, 3.41e-10}, potential.DefaultParams())
//	for _, line := range res.Report() {
//	  fmt.Println(line)
//	}
package binding
