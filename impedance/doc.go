// Package impedance models complex impedance over an extended domain with
// two distinguished values:
//
//	Finite(z) — an ordinary complex impedance z ∈ ℂ
//	Short     — the ideal zero-impedance branch (a wire)
//	Open      — the ideal infinite-impedance branch (a break)
//
// The distinguished values make the series and parallel combinators total:
// no division by zero, no NaN/Inf propagation, no floating-point pathology
// inside the reduction loop. Note that Finite(0) is NOT canonicalized to
// Short: only producers that mean an ideal wire (sources, explicit shorts)
// construct Short, and the combinators route finite zeros through the
// Short/Open cases instead of dividing by them.
//
// Algebraic laws (see the package tests):
//
//	– Series:   Short is the two-sided identity, Open the annihilator.
//	– Parallel: Open is the two-sided identity, Short the annihilator.
//	– Both operations commute; both associate up to float tolerance.
//	– Passivity is preserved: non-negative real parts in, non-negative
//	  real part out (Open and Short count as passive).
//
// Complexity: every combinator is O(1); the many-variants are O(n) over
// their input slice.
package impedance
