// SPDX-License-Identifier: MIT
// Package: ljbind/distances
//
// errors.go — sentinels and the positional ParseError.

package distances

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks a line that is not a valid floating-point literal.
	ErrParse = errors.New("distances: line is not a number")

	// ErrInvalidDistance marks a value that parsed but is NaN, ±Inf or <= 0.
	ErrInvalidDistance = errors.New("distances: distance must be finite and > 0")
)

// ParseError locates a rejected line. Err is ErrParse or ErrInvalidDistance.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, whitespace-trimmed
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
