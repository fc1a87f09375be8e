// SPDX-License-Identifier: MIT

// Package pairing relates a number of pairwise distances to a number of objects.
//
// N objects have P = N·(N−1)/2 unordered pairs. Going backwards, a list of P
// distances is only geometrically consistent if
//
//	N² − N − 2·P = 0
//
// has a positive integer root, i.e. when the discriminant D = 1 + 8·P is a
// perfect square; then N = (1 + √D)/2. The negative root is never physical.
//
// The square test is done in integer arithmetic: a floating "√D mod 1 == 0"
// test misclassifies large inputs, so √D is rounded and verified by squaring.
//
//	P:  0  1  3  6  10  15  21  28 ...
//	N:  1  2  3  4   5   6   7   8 ...
package pairing
