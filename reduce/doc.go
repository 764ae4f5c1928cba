// Package reduce implements the fixed-point series/parallel rewrite engine
// over a circuit.Graph.
//
// Reduce caches component impedances at the requested angular frequency,
// then alternates two discovery rules until neither fires:
//
//   - Series: scan nodes in ascending index order for a series pivot — a
//     non-ground node of degree 2 whose two incident components are both
//     passive. The pair is replaced by one equivalent between the outer
//     endpoints. A pivot whose outer endpoints coincide is skipped: a
//     reduction must never introduce a self-loop.
//   - Parallel: partition active passive components by unordered endpoint
//     pair and collapse the largest class of size ≥ 2 (ties broken by the
//     lowest member index) into one equivalent.
//
// Each application retires the member components (logically, keeping their
// indices valid), materializes the equivalent as a real component with its
// impedance cached, and appends a Step to the ordered log, so the log is a
// complete audit trail of the rewrite.
//
// Termination: every step replaces k ≥ 2 active passive components with
// one, so the loop runs at most the initial active-passive count times.
// Each step preserves the driving-point impedance between the nodes that
// remain incident to active components.
//
// The DeltaWye step kind is reserved in the taxonomy; no discovery rule
// produces it.
//
// Errors (sentinel):
//
//	– ErrNilGraph if the graph pointer is nil.
//	– ErrRewrite  if an equivalent impedance cannot be realized as a
//	  component kind (a real-axis value with non-positive real part).
//	  The call aborts and the graph state is unspecified; discard it.
//
// Complexity: O(S · (N + M)) with S the number of steps, N nodes, M
// components. Memory: O(S) for the log plus one component per step.
package reduce
