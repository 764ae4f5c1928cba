package impedance

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// ErrNonFinite indicates that a validated constructor was handed a complex
// value with a NaN or infinite part. Use the Open/Short constructors for
// the ideal limits instead of encoding them as floats.
var ErrNonFinite = errors.New("impedance: non-finite complex value")

// kind discriminates the three cases of the extended domain.
type kind uint8

const (
	kindFinite kind = iota
	kindOpen
	kindShort
)

// Result is an impedance in the extended domain: Finite(z), Open, or Short.
//
// The zero Result is Finite(0), which is a legal impedance and distinct
// from Short. Result values are comparable with ==.
type Result struct {
	k kind
	z complex128
}

// Finite wraps an ordinary complex impedance. The value is trusted; use
// New for inputs that may carry NaN or Inf parts.
func Finite(z complex128) Result {
	return Result{k: kindFinite, z: z}
}

// Open is the ideal infinite-impedance (broken) branch.
func Open() Result {
	return Result{k: kindOpen}
}

// Short is the ideal zero-impedance branch.
func Short() Result {
	return Result{k: kindShort}
}

// New validates z and wraps it as Finite. Returns ErrNonFinite when either
// part is NaN or infinite. A finite zero is accepted and preserved as
// Finite(0), never folded to Short.
func New(z complex128) (Result, error) {
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return Result{}, fmt.Errorf("%w: %v", ErrNonFinite, z)
	}

	return Finite(z), nil
}

// IsFinite reports whether the result is an ordinary complex impedance.
func (r Result) IsFinite() bool { return r.k == kindFinite }

// IsOpen reports whether the result is the broken branch.
func (r Result) IsOpen() bool { return r.k == kindOpen }

// IsShort reports whether the result is the ideal wire.
func (r Result) IsShort() bool { return r.k == kindShort }

// Complex returns the finite value and true, or 0 and false for Open/Short.
func (r Result) Complex() (complex128, bool) {
	return r.z, r.k == kindFinite
}

// Passive reports whether the impedance dissipates or stores energy:
// Re(z) ≥ 0 for finite values; Open and Short are passive limits.
func (r Result) Passive() bool {
	if r.k != kindFinite {
		return true
	}

	return real(r.z) >= 0
}

// String renders the result for step logs: "Open", "Short", or the complex
// value with an ohm suffix.
func (r Result) String() string {
	switch r.k {
	case kindOpen:
		return "Open"
	case kindShort:
		return "Short"
	default:
		return fmt.Sprintf("%v Ω", r.z)
	}
}
