// Package ljbind estimates the total binding energy of a small set of point
// objects from their pairwise separations, using the Lennard-Jones potential.
//
// 🚀 What does ljbind do?
//
//	Given a file of pairwise distances (metres, one per line) it:
//		• checks that the count is N·(N−1)/2 for a whole number N of objects
//		• sums E(r) = 4·ε·((σ/r)^12 − (σ/r)^6) over every distance
//		• re-checks the potential against a known reference point
//
// Everything is organized under small, pure subpackages:
//
//	potential/ — Params (σ, ε) and the pair energy E(r)
//	distances/ — line-oriented loader with positional parse errors
//	pairing/   — pairing count ↔ object count, exact square test
//	binding/   — aggregation and the human-readable report
//	selfcheck/ — reference-point regression verdict
//	config/    — YAML configuration over argon defaults
//	pipeline/  — load → validate → aggregate → self-check
//	cmd/ljbind — the command-line driver
//
// Quick example (three objects, three pairings):
//
//	    1
//	   / \
//	  2───3
//
//	r1_2 = 4.1e-10, r1_3 = 2e-10, r2_3 = 3.41e-10
//
//	go install github.com/katalvlaran/ljbind/cmd/ljbind@latest
package ljbind
