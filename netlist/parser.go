package netlist

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/voltlane/ohmred/circuit"
	"github.com/voltlane/ohmred/units"
)

// Sentinel errors attached to *ParseError values.
var (
	// ErrBadSuffix indicates an unrecognized SI suffix on a value literal.
	ErrBadSuffix = errors.New("netlist: invalid SI suffix")

	// ErrBadNumber indicates an unparsable numeric part in a value literal.
	ErrBadNumber = errors.New("netlist: invalid numeric literal")

	// ErrBadLine indicates a component line with too few tokens.
	ErrBadLine = errors.New("netlist: malformed component line")

	// ErrUnknownKind indicates a component ID whose first letter selects
	// no known component kind.
	ErrUnknownKind = errors.New("netlist: unknown component kind")

	// ErrNoGround indicates a netlist that never names a ground node
	// ("gnd" or "0").
	ErrNoGround = errors.New("netlist: no ground node specified")

	// ErrNoComponents indicates a netlist with no component lines.
	ErrNoComponents = errors.New("netlist: no components specified")
)

// ParseError is a line-numbered parse diagnostic. Line 0 marks whole-file
// conditions (missing ground, empty netlist, unreadable file).
type ParseError struct {
	Line    int
	Message string
	Err     error
}

// Error renders the diagnostic with its line number.
func (e *ParseError) Error() string {
	return fmt.Sprintf("netlist: line %d: %s", e.Line, e.Message)
}

// Unwrap exposes the underlying sentinel or validation error.
func (e *ParseError) Unwrap() error { return e.Err }

func errorf(line int, err error, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Message: fmt.Sprintf(format, args...), Err: err}
}

// siSuffix maps the recognized suffixes (already lowercased) to their
// multipliers. "meg" wins over "m" because the whole suffix is matched.
var siSuffix = map[string]float64{
	"t":   1e12,
	"g":   1e9,
	"meg": 1e6,
	"k":   1e3,
	"":    1,
	"m":   1e-3,
	"u":   1e-6,
	"µ":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
}

// ParseValue parses a decimal literal with an optional SI suffix, e.g.
// "4.7k" → 4700, "100n" → 1e-7, "2meg" → 2e6. The suffix is everything
// after the leading [digits, '.', '-'] run and is matched
// case-insensitively as a whole.
func ParseValue(input string, line int) (float64, error) {
	input = strings.TrimSpace(input)

	split := len(input)
	for i, ch := range input {
		if (ch < '0' || ch > '9') && ch != '.' && ch != '-' {
			split = i
			break
		}
	}
	numeric, suffix := input[:split], strings.TrimSpace(input[split:])

	value, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0, errorf(line, ErrBadNumber, "invalid number %q", numeric)
	}
	mult, ok := siSuffix[strings.ToLower(suffix)]
	if !ok {
		return 0, errorf(line, ErrBadSuffix, "invalid suffix %q", suffix)
	}

	return value * mult, nil
}

// parser accumulates graph state across component lines.
type parser struct {
	graph   *circuit.Graph
	nodeIdx map[string]int
}

// node returns the index for a node name, creating it on first sight, and
// designates ground for "gnd" (any case) or "0".
func (p *parser) node(name string) int {
	if idx, ok := p.nodeIdx[name]; ok {
		return idx
	}
	idx := p.graph.AddNode(name)
	p.nodeIdx[name] = idx
	if strings.EqualFold(name, "gnd") || name == "0" {
		_ = p.graph.SetGround(idx)
	}

	return idx
}

// sourcePhasor resolves the value tokens of a V or I line into magnitude
// and phase (degrees): DC by default, AC when tokens[4] is "AC". Missing
// AC magnitude falls back to the main VALUE; missing phase to 0.
func sourcePhasor(tokens []string, value float64, line int) (mag, phaseDeg float64, ac bool, err error) {
	if len(tokens) < 5 || !strings.EqualFold(tokens[4], "AC") {
		return value, 0, false, nil
	}
	mag = value
	if len(tokens) >= 6 {
		if mag, err = ParseValue(tokens[5], line); err != nil {
			return 0, 0, false, err
		}
	}
	if len(tokens) >= 7 {
		if phaseDeg, err = ParseValue(tokens[6], line); err != nil {
			return 0, 0, false, err
		}
	}

	return mag, phaseDeg, true, nil
}

// line parses a single component record. Blank and comment lines are
// no-ops.
func (p *parser) line(text string, lineNum int) error {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "*") {
		return nil
	}
	tokens := strings.Fields(text)
	if len(tokens) < 4 {
		return errorf(lineNum, ErrBadLine, "expected at least 4 tokens, got %d", len(tokens))
	}

	id := tokens[0]
	n0 := p.node(tokens[1])
	n1 := p.node(tokens[2])
	value, err := ParseValue(tokens[3], lineNum)
	if err != nil {
		return err
	}

	var kind circuit.ComponentKind
	switch strings.ToLower(id[:1]) {
	case "r":
		r, verr := units.NewResistance(value)
		if verr != nil {
			return errorf(lineNum, verr, "%v", verr)
		}
		kind = circuit.Resistor{R: r}
	case "l":
		l, verr := units.NewInductance(value)
		if verr != nil {
			return errorf(lineNum, verr, "%v", verr)
		}
		kind = circuit.Inductor{L: l}
	case "c":
		c, verr := units.NewCapacitance(value)
		if verr != nil {
			return errorf(lineNum, verr, "%v", verr)
		}
		kind = circuit.Capacitor{C: c}
	case "v":
		mag, phase, ac, perr := sourcePhasor(tokens, value, lineNum)
		if perr != nil {
			return perr
		}
		if ac {
			kind = circuit.VoltageSource{V: units.ACVoltage(mag, phase)}
		} else {
			kind = circuit.VoltageSource{V: units.DCVoltage(mag)}
		}
	case "i":
		mag, phase, ac, perr := sourcePhasor(tokens, value, lineNum)
		if perr != nil {
			return perr
		}
		if ac {
			kind = circuit.CurrentSource{I: units.ACCurrent(mag, phase)}
		} else {
			kind = circuit.CurrentSource{I: units.DCCurrent(mag)}
		}
	default:
		return errorf(lineNum, ErrUnknownKind, "unknown component type %q", id[:1])
	}

	if _, err = p.graph.AddComponent(id, kind, n0, n1); err != nil {
		return errorf(lineNum, err, "%v", err)
	}

	return nil
}

// Parse ingests a whole netlist. The result is all-or-nothing: on any
// line error, or when the netlist lacks a ground node or has no
// components, a *ParseError is returned and no graph is.
func Parse(input string) (*circuit.Graph, error) {
	p := &parser{graph: circuit.NewGraph(), nodeIdx: make(map[string]int)}
	for i, text := range strings.Split(input, "\n") {
		if err := p.line(text, i+1); err != nil {
			return nil, err
		}
	}
	if _, ok := p.graph.Ground(); !ok {
		return nil, errorf(0, ErrNoGround, "no ground node specified")
	}
	if p.graph.ComponentCount() == 0 {
		return nil, errorf(0, ErrNoComponents, "no components specified")
	}

	return p.graph, nil
}

// ParseFile reads and parses a netlist file.
func ParseFile(path string) (*circuit.Graph, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errorf(0, err, "failed to read file %s", path)
	}

	return Parse(string(contents))
}
