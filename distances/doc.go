// SPDX-License-Identifier: MIT

// Package distances loads pairwise separation distances from plain text.
//
// Format:
//
//	one decimal floating-point value per line, metres, no header,
//	no comments, no other delimiter than the newline:
//
//	  4.1e-10
//	  2e-10
//	  3.41e-10
//
// Every line must parse and must be a finite value > 0. The first bad line
// stops the load with a *ParseError, so nothing downstream ever sees partial
// data. File order is preserved.
package distances
