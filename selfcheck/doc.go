// SPDX-License-Identifier: MIT

// Package selfcheck guards the potential against regressions.
//
// Check re-evaluates the potential at a reference separation whose energy is
// known (6.82e-10 m → −1.0e-22 J for argon) and compares within a tolerance
// (1e-23 J). The verdict is advisory: an untrusted result is reported, it
// does not invalidate totals that were already computed.
package selfcheck
