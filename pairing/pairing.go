// SPDX-License-Identifier: MIT
// Package: ljbind/pairing
//
// pairing.go — object count from pairing count, and its inverse.

package pairing

import (
	"math"
)

// maxCount bounds the input so that D = 1 + 8·count stays below 2^53 (exact
// as a float64) and every square in isqrt stays far from int64 overflow.
const maxCount = 1 << 48

// Validate returns the number of objects N whose N·(N−1)/2 unordered pairs
// equal count.
//
// Algorithm:
//  1. D = 1 + 8·count.
//  2. s = isqrt(D) (exact integer square root).
//  3. If s·s != D → *GeometryError (wraps ErrInvalidGeometry).
//  4. N = (1 + s)/2; s is odd whenever D is an odd square, so this is exact.
//
// Edge cases: count = 0 → N = 1, count = 1 → N = 2.
// Errors: ErrNegativeCount for count < 0, ErrCountTooLarge above 2^48,
// *GeometryError when D is not a square.
// Complexity: O(1).
func Validate(count int) (int, error) {
	if count < 0 {
		return 0, ErrNegativeCount
	}
	if int64(count) > maxCount {
		return 0, ErrCountTooLarge
	}

	d := 1 + 8*int64(count)
	s := isqrt(d)
	if s*s != d {
		return 0, &GeometryError{Pairings: count, Discriminant: d}
	}

	return int((1 + s) / 2), nil
}

// Pairings returns n·(n−1)/2, the number of unordered pairs among n objects.
// n <= 1 yields 0.
func Pairings(n int) int {
	if n <= 1 {
		return 0
	}

	return n * (n - 1) / 2
}

// PairIndex maps the k-th pairing (0-based) among n objects to its 1-based
// object labels (i, j), i < j, in row-major upper-triangle order:
//
//	k: 0    1    2    3    4    5
//	   1-2  1-3  1-4  2-3  2-4  3-4   (n = 4)
//
// Errors: ErrOutOfRange when k is not in [0, Pairings(n)).
// Complexity: O(n).
func PairIndex(k, n int) (i, j int, err error) {
	if k < 0 || k >= Pairings(n) {
		return 0, 0, ErrOutOfRange
	}
	for i = 1; i < n; i++ {
		row := n - i // pairs (i, i+1..n)
		if k < row {
			return i, i + 1 + k, nil
		}
		k -= row
	}

	return 0, 0, ErrOutOfRange
}

// isqrt returns floor(√x) for 0 <= x < 2^53. The float estimate is
// corrected in integer arithmetic, so the result is exact.
func isqrt(x int64) int64 {
	s := int64(math.Sqrt(float64(x)))
	for s > 0 && s*s > x {
		s--
	}
	for (s+1)*(s+1) <= x {
		s++
	}

	return s
}
