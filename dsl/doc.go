// Package dsl defines the AST for circuit analysis programs and their
// lowering to a circuit.Graph plus an angular frequency.
//
// A Program names a circuit, optionally designates a ground node, selects
// an analysis (AC at a frequency with an RMS/peak convention, or DC),
// lists typed Elements whose values may be Known quantities or Unknown
// symbols, states Constraints over expressions (node voltages, branch
// currents and powers, equivalent impedances, magnitudes, angles), and
// lists solve targets.
//
// Whether a program requires a ground is a property of its expressions:
// any ground-relative voltage reference in a constraint or solve target
// makes ground mandatory; purely differential programs do not need one.
//
// Lower builds the circuit graph (creating nodes on demand, marking
// ground) and derives ω from the analysis: 2π·f for AC, 0 for DC. Unknown
// passive values lower to symbolic units quantities, which the reducer
// treats as unrealizable (Open) at ω. The operational semantics of
// constraints and solve targets beyond lowering live outside this
// package.
package dsl
