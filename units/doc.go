// Package units defines validated physical scalars for circuit analysis:
// Resistance, Inductance, Capacitance, AngularFrequency, and the phasor
// quantities Voltage and Current, plus the Value wrapper that lets a
// component carry either a known numeric value or a named symbolic
// placeholder.
//
// Construction is validation-first: every known scalar must be finite and
// (for R, L, C) strictly positive; AngularFrequency must be finite and
// non-negative (DC, ω = 0, is legal). Invalid inputs are rejected with a
// sentinel error rather than ever producing a quantity that downstream
// algebra could trip on.
//
// Phasors are plain complex128 values: a DC source is a purely real phasor,
// an AC source is magnitude·(cos φ + j·sin φ) with the phase supplied in
// degrees and converted internally.
//
// Errors (sentinel):
//
//	– ErrInvalidResistance       if r ≤ 0 or r is not finite.
//	– ErrInvalidInductance       if l ≤ 0 or l is not finite.
//	– ErrInvalidCapacitance      if c ≤ 0 or c is not finite.
//	– ErrInvalidAngularFrequency if ω < 0 or ω is not finite.
//
// Callers branch with errors.Is; constructors attach the offending value
// as %w-wrapped context.
package units
