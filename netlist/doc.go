// Package netlist ingests line-oriented SPICE-style netlists into a
// circuit.Graph.
//
// Format:
//
//	* comment lines start with an asterisk; blank lines are ignored
//	ID N1 N2 VALUE [AC MAG PHASE]
//
// The first letter of ID selects the component kind: R resistor,
// L inductor, C capacitor, V voltage source, I current source. VALUE is a
// decimal literal with an optional SI suffix (case-insensitive):
//
//	t=1e12  g=1e9  meg=1e6  k=1e3  m=1e-3  u=1e-6  n=1e-9  p=1e-12
//
// "meg" is matched as a whole suffix, so it is never mistaken for milli.
// For V and I lines, a trailing "AC MAG PHASE" yields an AC phasor with
// the phase given in degrees; without it the source is DC. A node named
// "gnd" (any case) or "0" designates the graph's ground.
//
// Ingestion is all-or-nothing: Parse returns either a complete graph with
// a ground node and at least one component, or a *ParseError carrying the
// offending line number; partial graphs are never observable.
package netlist
