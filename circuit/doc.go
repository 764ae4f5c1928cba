// Package circuit defines the component model and the circuit multigraph
// that the reducer rewrites.
//
// Components are tagged variants (Resistor, Inductor, Capacitor, a generic
// Impedance, VoltageSource, CurrentSource). Each kind knows its impedance
// at a given angular frequency ω in the extended {Finite, Open, Short}
// domain: unknown symbolic values have no numeric realization and map to
// Open; ideal sources are zero-impedance branches and map to Short.
//
// The Graph is an undirected multigraph with arena-style identity:
//
//   - Nodes and components live in append-only slices and are addressed by
//     their integer index. Indices are never reused.
//   - Deletion is logical: a retired component keeps its storage slot and
//     its adjacency entries, and is filtered out of queries by its active
//     flag. This keeps every recorded index valid for the lifetime of the
//     graph, which makes reduction step logs trivially auditable.
//   - adjacency[n] holds the indices of every component ever attached to
//     node n, active or not; ConnectionsAt filters to active ones.
//   - At most one node is designated ground.
//
// Invariants maintained by construction and required of every mutator:
//
//  1. No active component is a self-loop (AddComponent rejects them).
//  2. adjacency[n] contains exactly the components whose endpoints
//     include n, regardless of active state.
//  3. All stored indices are in range.
//  4. After CacheImpedances(ω), every active component has a cached
//     impedance; inactive components have none.
//  5. Ground, if set, designates an existing node.
//
// A Graph is single-owner and single-threaded: it holds no locks, and a
// reducer run assumes exclusive access.
package circuit
