package dsl

import (
	"errors"
	"fmt"

	"github.com/voltlane/ohmred/circuit"
	"github.com/voltlane/ohmred/units"
)

// Sentinel errors returned by Lower.
var (
	// ErrNilProgram indicates a nil *Program.
	ErrNilProgram = errors.New("dsl: program is nil")

	// ErrNoElements indicates a program with no elements to lower.
	ErrNoElements = errors.New("dsl: program has no elements")

	// ErrGroundRequired indicates a program whose expressions reference
	// ground-relative voltages without declaring a ground node.
	ErrGroundRequired = errors.New("dsl: ground-relative reference without ground")

	// ErrBadElement indicates an element whose params do not match its
	// kind, or whose nodes coincide.
	ErrBadElement = errors.New("dsl: malformed element")

	// ErrUnknownSourceValue indicates a source element with a symbolic
	// value; sources must be numeric to lower.
	ErrUnknownSourceValue = errors.New("dsl: source value must be known")
)

// Lower builds the circuit graph described by p and derives the angular
// frequency of its analysis (2π·f for AC, 0 for DC or when no analysis is
// declared). The declared ground node, if any, is created first and
// marked, even when no element touches it; the other nodes are created on
// first reference in element order.
//
// Unknown passive values lower to symbolic units quantities; the reducer
// realizes those as Open at ω. Unknown source values cannot lower
// (ErrUnknownSourceValue).
func Lower(p *Program) (*circuit.Graph, units.AngularFrequency, error) {
	var omega units.AngularFrequency
	if p == nil {
		return nil, omega, ErrNilProgram
	}
	if len(p.Elements) == 0 {
		return nil, omega, ErrNoElements
	}
	if p.RequiresGround() && !p.HasGround() {
		return nil, omega, ErrGroundRequired
	}

	if ac, ok := p.Analysis.(ACAnalysis); ok {
		var err error
		if omega, err = units.FromHz(ac.FrequencyHz); err != nil {
			return nil, omega, fmt.Errorf("dsl: analysis frequency: %w", err)
		}
	}

	g := circuit.NewGraph()
	nodeIdx := make(map[string]int)
	node := func(name string) int {
		if idx, ok := nodeIdx[name]; ok {
			return idx
		}
		idx := g.AddNode(name)
		nodeIdx[name] = idx

		return idx
	}

	if p.HasGround() {
		if err := g.SetGround(node(p.Ground)); err != nil {
			return nil, omega, err
		}
	}

	for _, el := range p.Elements {
		kind, err := elementKind(el)
		if err != nil {
			return nil, omega, err
		}
		n0, n1 := node(el.Nodes[0]), node(el.Nodes[1])
		if _, err = g.AddComponent(el.ID, kind, n0, n1); err != nil {
			return nil, omega, fmt.Errorf("%w: element %q: %w", ErrBadElement, el.ID, err)
		}
	}

	return g, omega, nil
}

// elementKind maps one DSL element onto a circuit component kind,
// validating that its params variant matches its kind.
func elementKind(el Element) (circuit.ComponentKind, error) {
	badParams := func() error {
		return fmt.Errorf("%w: element %q: params %T do not fit kind", ErrBadElement, el.ID, el.Params)
	}

	switch el.Kind {
	case ResistorElem, InductorElem, CapacitorElem:
		pp, ok := el.Params.(PassiveParams)
		if !ok {
			return nil, badParams()
		}

		return passiveKind(el, pp.Value)

	case VoltageSourceElem:
		switch params := el.Params.(type) {
		case VacParams:
			mag, err := knownSI(params.Mag, el.ID)
			if err != nil {
				return nil, err
			}

			return circuit.VoltageSource{V: units.ACVoltage(mag, params.PhaseDeg)}, nil
		case VdcParams:
			v, err := knownSI(params.Value, el.ID)
			if err != nil {
				return nil, err
			}

			return circuit.VoltageSource{V: units.DCVoltage(v)}, nil
		default:
			return nil, badParams()
		}

	case CurrentSourceElem:
		params, ok := el.Params.(IdcParams)
		if !ok {
			return nil, badParams()
		}
		i, err := knownSI(params.Value, el.ID)
		if err != nil {
			return nil, err
		}

		return circuit.CurrentSource{I: units.DCCurrent(i)}, nil

	default:
		return nil, fmt.Errorf("%w: element %q: unknown kind %d", ErrBadElement, el.ID, el.Kind)
	}
}

// passiveKind lowers an R/L/C element value, known or symbolic.
func passiveKind(el Element, value ValueExpr) (circuit.ComponentKind, error) {
	wrap := func(err error) error {
		return fmt.Errorf("%w: element %q: %w", ErrBadElement, el.ID, err)
	}

	switch v := value.(type) {
	case KnownValue:
		switch el.Kind {
		case ResistorElem:
			r, err := units.NewResistance(v.Quantity.ValueSI)
			if err != nil {
				return nil, wrap(err)
			}

			return circuit.Resistor{R: r}, nil
		case InductorElem:
			l, err := units.NewInductance(v.Quantity.ValueSI)
			if err != nil {
				return nil, wrap(err)
			}

			return circuit.Inductor{L: l}, nil
		default:
			c, err := units.NewCapacitance(v.Quantity.ValueSI)
			if err != nil {
				return nil, wrap(err)
			}

			return circuit.Capacitor{C: c}, nil
		}

	case UnknownValue:
		name := string(v.Sym)
		switch el.Kind {
		case ResistorElem:
			return circuit.Resistor{R: units.UnknownResistance(name)}, nil
		case InductorElem:
			return circuit.Inductor{L: units.UnknownInductance(name)}, nil
		default:
			return circuit.Capacitor{C: units.UnknownCapacitance(name)}, nil
		}

	default:
		return nil, wrap(fmt.Errorf("unsupported value expression %T", value))
	}
}

// knownSI extracts a numeric SI value from a source's ValueExpr.
func knownSI(v ValueExpr, elemID string) (float64, error) {
	switch v := v.(type) {
	case KnownValue:
		return v.Quantity.ValueSI, nil
	case UnknownValue:
		return 0, fmt.Errorf("%w: element %q carries symbol %q", ErrUnknownSourceValue, elemID, v.Sym)
	default:
		return 0, fmt.Errorf("%w: element %q: unsupported value expression %T", ErrBadElement, elemID, v)
	}
}
