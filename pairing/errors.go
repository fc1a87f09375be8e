// SPDX-License-Identifier: MIT
// Package: ljbind/pairing
//
// errors.go — sentinel errors and the GeometryError detail type.

package pairing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry marks a pairing count that no whole number of
	// objects can produce.
	ErrInvalidGeometry = errors.New("pairing: count does not correspond to a whole number of objects")

	// ErrNegativeCount marks a negative pairing count.
	ErrNegativeCount = errors.New("pairing: count must be >= 0")

	// ErrCountTooLarge marks a count beyond the exact-arithmetic bound (2^48).
	ErrCountTooLarge = errors.New("pairing: count too large")

	// ErrOutOfRange marks a pair index outside [0, Pairings(n)).
	ErrOutOfRange = errors.New("pairing: index out of range")
)

// GeometryError carries the rejected count and its discriminant 1 + 8·count.
// It unwraps to ErrInvalidGeometry.
type GeometryError struct {
	Pairings     int
	Discriminant int64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("pairing: %d pairings give discriminant %d, not a perfect square", e.Pairings, e.Discriminant)
}

func (e *GeometryError) Unwrap() error { return ErrInvalidGeometry }
