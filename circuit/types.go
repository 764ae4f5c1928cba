package circuit

import (
	"errors"

	"github.com/voltlane/ohmred/impedance"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNodeOutOfRange indicates an operation referenced a node index
	// that was never created.
	ErrNodeOutOfRange = errors.New("circuit: node index out of range")

	// ErrComponentOutOfRange indicates an operation referenced a component
	// index that was never created.
	ErrComponentOutOfRange = errors.New("circuit: component index out of range")

	// ErrSelfLoop indicates an attempt to attach both terminals of a
	// component to the same node.
	ErrSelfLoop = errors.New("circuit: component endpoints must differ")

	// ErrNilKind indicates a component was added without a kind.
	ErrNilKind = errors.New("circuit: component kind is nil")
)

// Node is a circuit node. Its identity is its index in the graph.
type Node struct {
	// ID is the human-readable node name from the netlist or DSL.
	ID string
}

// Component is a two-terminal branch. Its identity is its index in the
// graph; indices are append-only and never reused.
type Component struct {
	// ID is the human-readable component name ("R1", "EQ3", ...).
	ID string

	// Kind is the tagged component variant.
	Kind ComponentKind

	// Nodes are the two endpoint node indices. Always distinct.
	Nodes [2]int

	// Active reports whether the component still participates in the
	// circuit. Retirement is logical; storage is never reclaimed.
	Active bool

	cached    impedance.Result
	hasCached bool
}

// CachedImpedance returns the impedance cached by the last
// CacheImpedances or reducer materialization, and whether one is present.
func (c *Component) CachedImpedance() (impedance.Result, bool) {
	return c.cached, c.hasCached
}

// OtherEnd returns the endpoint of c that is not n. The second result is
// false when n is not an endpoint of c.
func (c *Component) OtherEnd(n int) (int, bool) {
	switch n {
	case c.Nodes[0]:
		return c.Nodes[1], true
	case c.Nodes[1]:
		return c.Nodes[0], true
	default:
		return 0, false
	}
}

// Graph is the circuit multigraph: append-only node and component arenas,
// per-node incidence lists, and an optional ground designation.
//
// Graph is not safe for concurrent use; a reducer run owns it exclusively.
type Graph struct {
	nodes      []Node
	components []Component

	// adjacency[n] lists every component index ever attached to node n,
	// active or not; queries filter on the active flag.
	adjacency [][]int

	// ground is the designated ground node index, or -1 when unset.
	ground int
}

// NewGraph creates an empty circuit graph with no ground designated.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{ground: -1}
}
