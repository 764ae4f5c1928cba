package units

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for scalar validation.
var (
	// ErrInvalidResistance indicates a resistance that is not strictly positive and finite.
	ErrInvalidResistance = errors.New("units: invalid resistance")

	// ErrInvalidInductance indicates an inductance that is not strictly positive and finite.
	ErrInvalidInductance = errors.New("units: invalid inductance")

	// ErrInvalidCapacitance indicates a capacitance that is not strictly positive and finite.
	ErrInvalidCapacitance = errors.New("units: invalid capacitance")

	// ErrInvalidAngularFrequency indicates an angular frequency that is negative or not finite.
	ErrInvalidAngularFrequency = errors.New("units: invalid angular frequency")
)

// Resistance is a resistor value in ohms, known or symbolic.
type Resistance struct {
	v Value[float64]
}

// NewResistance validates r (must be > 0 and finite) and wraps it.
// Returns ErrInvalidResistance otherwise.
func NewResistance(r float64) (Resistance, error) {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return Resistance{}, fmt.Errorf("%w: %g Ω (must be > 0 and finite)", ErrInvalidResistance, r)
	}

	return Resistance{v: Known(r)}, nil
}

// UnknownResistance names a symbolic resistance.
func UnknownResistance(name string) Resistance {
	return Resistance{v: Unknown[float64](name)}
}

// IsKnown reports whether the resistance carries a numeric value.
func (r Resistance) IsKnown() bool { return r.v.IsKnown() }

// Get returns the value in ohms and true, or 0 and false when symbolic.
func (r Resistance) Get() (float64, bool) { return r.v.Get() }

// Value exposes the underlying optional wrapper.
func (r Resistance) Value() Value[float64] { return r.v }

// Inductance is an inductor value in henries, known or symbolic.
type Inductance struct {
	v Value[float64]
}

// NewInductance validates l (must be > 0 and finite) and wraps it.
// Returns ErrInvalidInductance otherwise.
func NewInductance(l float64) (Inductance, error) {
	if math.IsNaN(l) || math.IsInf(l, 0) || l <= 0 {
		return Inductance{}, fmt.Errorf("%w: %g H (must be > 0 and finite)", ErrInvalidInductance, l)
	}

	return Inductance{v: Known(l)}, nil
}

// UnknownInductance names a symbolic inductance.
func UnknownInductance(name string) Inductance {
	return Inductance{v: Unknown[float64](name)}
}

// IsKnown reports whether the inductance carries a numeric value.
func (l Inductance) IsKnown() bool { return l.v.IsKnown() }

// Get returns the value in henries and true, or 0 and false when symbolic.
func (l Inductance) Get() (float64, bool) { return l.v.Get() }

// Value exposes the underlying optional wrapper.
func (l Inductance) Value() Value[float64] { return l.v }

// Capacitance is a capacitor value in farads, known or symbolic.
type Capacitance struct {
	v Value[float64]
}

// NewCapacitance validates c (must be > 0 and finite) and wraps it.
// Returns ErrInvalidCapacitance otherwise.
func NewCapacitance(c float64) (Capacitance, error) {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return Capacitance{}, fmt.Errorf("%w: %g F (must be > 0 and finite)", ErrInvalidCapacitance, c)
	}

	return Capacitance{v: Known(c)}, nil
}

// UnknownCapacitance names a symbolic capacitance.
func UnknownCapacitance(name string) Capacitance {
	return Capacitance{v: Unknown[float64](name)}
}

// IsKnown reports whether the capacitance carries a numeric value.
func (c Capacitance) IsKnown() bool { return c.v.IsKnown() }

// Get returns the value in farads and true, or 0 and false when symbolic.
func (c Capacitance) Get() (float64, bool) { return c.v.Get() }

// Value exposes the underlying optional wrapper.
func (c Capacitance) Value() Value[float64] { return c.v }

// AngularFrequency is ω in radians per second. Zero means DC.
type AngularFrequency struct {
	rad float64
}

// NewAngularFrequency validates ω (must be ≥ 0 and finite) and wraps it.
// Returns ErrInvalidAngularFrequency otherwise.
func NewAngularFrequency(omega float64) (AngularFrequency, error) {
	if omega < 0 || math.IsNaN(omega) || math.IsInf(omega, 0) {
		return AngularFrequency{}, fmt.Errorf("%w: %g rad/s (must be ≥ 0 and finite)", ErrInvalidAngularFrequency, omega)
	}

	return AngularFrequency{rad: omega}, nil
}

// FromHz converts an ordinary frequency in hertz to ω = 2πf.
// Returns ErrInvalidAngularFrequency when f is negative or not finite.
func FromHz(f float64) (AngularFrequency, error) {
	return NewAngularFrequency(2 * math.Pi * f)
}

// Rad returns ω in radians per second.
func (w AngularFrequency) Rad() float64 { return w.rad }

// Voltage is a complex voltage phasor in volts. DC voltages are purely real.
type Voltage struct {
	phasor complex128
}

// DCVoltage builds a purely real voltage phasor.
func DCVoltage(volts float64) Voltage {
	return Voltage{phasor: complex(volts, 0)}
}

// ACVoltage builds a phasor from magnitude and phase in degrees:
// magnitude·(cos φ + j·sin φ).
func ACVoltage(magnitude, phaseDeg float64) Voltage {
	phase := phaseDeg * math.Pi / 180
	return Voltage{phasor: complex(magnitude*math.Cos(phase), magnitude*math.Sin(phase))}
}

// Phasor returns the complex phasor value.
func (v Voltage) Phasor() complex128 { return v.phasor }

// Current is a complex current phasor in amperes. DC currents are purely real.
type Current struct {
	phasor complex128
}

// DCCurrent builds a purely real current phasor.
func DCCurrent(amps float64) Current {
	return Current{phasor: complex(amps, 0)}
}

// ACCurrent builds a phasor from magnitude and phase in degrees:
// magnitude·(cos φ + j·sin φ).
func ACCurrent(magnitude, phaseDeg float64) Current {
	phase := phaseDeg * math.Pi / 180
	return Current{phasor: complex(magnitude*math.Cos(phase), magnitude*math.Sin(phase))}
}

// Phasor returns the complex phasor value.
func (i Current) Phasor() complex128 { return i.phasor }
