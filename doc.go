// Package ohmred is a symbolic/numeric linear-circuit reducer.
//
// Given a multigraph of passive two-terminal components (resistors,
// inductors, capacitors, generic complex impedances) plus ideal sources,
// at a single angular frequency ω, ohmred repeatedly rewrites the graph
// using topological series/parallel equivalences until no further local
// reduction applies, preserving the driving-point impedance between any
// pair of external nodes.
//
// Everything is organized under flat subpackages:
//
//	units/     — validated physical scalars (R, L, C, ω, V, I) and the
//	             Known/Unknown value wrapper for symbolic placeholders
//	impedance/ — the extended impedance domain {Finite, Open, Short} with
//	             series/parallel combinators
//	circuit/   — component kinds and the circuit multigraph (incidence
//	             lists, active flags, impedance cache, ground marking)
//	reduce/    — the fixed-point rewrite engine producing an ordered
//	             step log
//	netlist/   — line-oriented netlist ingestion with SI-suffix literals
//	dsl/       — analysis program AST and lowering to a circuit graph
//
// Quick ASCII example:
//
//	n0 ──R1── n1 ──R2── n2
//
// reduces to a single equivalent R1+R2 between n0 and n2.
//
// The reducer is single-threaded and synchronous: a Graph must not be
// shared between concurrent Reduce calls, but independent graphs may be
// reduced in parallel.
//
//	go get github.com/voltlane/ohmred
package ohmred
