package circuit

import (
	"fmt"

	"github.com/voltlane/ohmred/impedance"
	"github.com/voltlane/ohmred/units"
)

// dcOmegaEps is the threshold below which ω is treated as DC when
// evaluating a capacitor: its reactance −1/(ωc) has no finite limit there.
const dcOmegaEps = 1e-12

// realAxisEps bounds |Im z| under which an equivalent impedance is folded
// back into a plain resistor.
const realAxisEps = 1e-12

// ComponentKind is the tagged variant describing what a component is:
// Resistor, Inductor, Capacitor, a generic Impedance, VoltageSource, or
// CurrentSource.
//
// Only passive kinds participate in reduction; sources are zero-impedance
// branches whose excitation is handled outside the reducer.
type ComponentKind interface {
	// Impedance realizes the kind at angular frequency ω in the extended
	// domain. Symbolic (unknown) values yield Open.
	Impedance(omega units.AngularFrequency) impedance.Result

	// IsPassive reports whether the kind may be merged by reduction.
	IsPassive() bool

	// IsSource reports whether the kind is an ideal source.
	IsSource() bool
}

// Resistor is a resistance branch.
type Resistor struct {
	R units.Resistance
}

// Impedance returns Finite(r + 0j), frequency-invariant; Open when the
// resistance is symbolic.
func (k Resistor) Impedance(units.AngularFrequency) impedance.Result {
	r, ok := k.R.Get()
	if !ok {
		return impedance.Open()
	}

	return impedance.Finite(complex(r, 0))
}

// IsPassive reports true: resistors always reduce.
func (k Resistor) IsPassive() bool { return true }

// IsSource reports false.
func (k Resistor) IsSource() bool { return false }

// Inductor is an inductance branch.
type Inductor struct {
	L units.Inductance
}

// Impedance returns Finite(0 + jωl); Short at DC (an ideal inductor is a
// wire at ω = 0); Open when the inductance is symbolic.
func (k Inductor) Impedance(omega units.AngularFrequency) impedance.Result {
	l, ok := k.L.Get()
	if !ok {
		return impedance.Open()
	}
	if omega.Rad() == 0 {
		return impedance.Short()
	}

	return impedance.Finite(complex(0, omega.Rad()*l))
}

// IsPassive reports true.
func (k Inductor) IsPassive() bool { return true }

// IsSource reports false.
func (k Inductor) IsSource() bool { return false }

// Capacitor is a capacitance branch.
type Capacitor struct {
	C units.Capacitance
}

// Impedance returns Finite(0 − j/(ωc)); Open at DC (ω below 1e-12) and
// when the capacitance is symbolic.
func (k Capacitor) Impedance(omega units.AngularFrequency) impedance.Result {
	c, ok := k.C.Get()
	if !ok {
		return impedance.Open()
	}
	if omega.Rad() < dcOmegaEps {
		return impedance.Open()
	}

	return impedance.Finite(complex(0, -1/(omega.Rad()*c)))
}

// IsPassive reports true.
func (k Capacitor) IsPassive() bool { return true }

// IsSource reports false.
func (k Capacitor) IsSource() bool { return false }

// Impedance is an opaque impedance branch, used both for ingested complex
// impedances and for the equivalents materialized by the reducer.
type Impedance struct {
	Z impedance.Result
}

// Impedance returns the stored extended-domain value verbatim; it does not
// depend on ω.
func (k Impedance) Impedance(units.AngularFrequency) impedance.Result { return k.Z }

// IsPassive reports true: Short and Open branches take part in reduction
// as the algebra's identity/absorber elements.
func (k Impedance) IsPassive() bool { return true }

// IsSource reports false.
func (k Impedance) IsSource() bool { return false }

// VoltageSource is an ideal voltage source branch.
type VoltageSource struct {
	V units.Voltage
}

// Impedance returns Short: for topological reduction an ideal source is a
// zero-impedance branch.
func (k VoltageSource) Impedance(units.AngularFrequency) impedance.Result {
	return impedance.Short()
}

// IsPassive reports false: sources never merge.
func (k VoltageSource) IsPassive() bool { return false }

// IsSource reports true.
func (k VoltageSource) IsSource() bool { return true }

// CurrentSource is an ideal current source branch.
type CurrentSource struct {
	I units.Current
}

// Impedance returns Short, as for VoltageSource.
func (k CurrentSource) Impedance(units.AngularFrequency) impedance.Result {
	return impedance.Short()
}

// IsPassive reports false.
func (k CurrentSource) IsPassive() bool { return false }

// IsSource reports true.
func (k CurrentSource) IsSource() bool { return true }

// KindFromImpedance converts a reduced impedance back into a component
// kind. A finite value on the real axis (|Im z| < 1e-12) becomes a
// Resistor, subject to resistance validation; anything else, including
// Open and Short, is wrapped as a generic Impedance.
//
// Returns the resistance validation error when the real-axis value is not
// a legal resistance (non-positive real part); the reducer surfaces that
// as a rewrite error.
func KindFromImpedance(z impedance.Result) (ComponentKind, error) {
	v, ok := z.Complex()
	if !ok {
		return Impedance{Z: z}, nil
	}
	if im := imag(v); im < realAxisEps && im > -realAxisEps {
		r, err := units.NewResistance(real(v))
		if err != nil {
			return nil, fmt.Errorf("cannot realize %v as a component: %w", z, err)
		}

		return Resistor{R: r}, nil
	}

	return Impedance{Z: z}, nil
}
