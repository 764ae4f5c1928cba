package circuit

import (
	"fmt"

	"github.com/voltlane/ohmred/impedance"
	"github.com/voltlane/ohmred/units"
)

// AddNode appends a node with the given human-readable id and returns its
// index. Node ids are not required to be unique; identity is the index.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) int {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id})
	g.adjacency = append(g.adjacency, nil)

	return idx
}

// AddComponent appends an active component between nodes n0 and n1 and
// returns its index. Both endpoints must exist and differ: reduction
// relies on the graph never holding an active self-loop.
//
// Returns ErrNilKind, ErrNodeOutOfRange, or ErrSelfLoop.
// Complexity: O(1) amortized.
func (g *Graph) AddComponent(id string, kind ComponentKind, n0, n1 int) (int, error) {
	if kind == nil {
		return 0, ErrNilKind
	}
	if n0 < 0 || n0 >= len(g.nodes) || n1 < 0 || n1 >= len(g.nodes) {
		return 0, fmt.Errorf("%w: (%d, %d) with %d nodes", ErrNodeOutOfRange, n0, n1, len(g.nodes))
	}
	if n0 == n1 {
		return 0, fmt.Errorf("%w: node %d", ErrSelfLoop, n0)
	}

	idx := len(g.components)
	g.components = append(g.components, Component{
		ID:     id,
		Kind:   kind,
		Nodes:  [2]int{n0, n1},
		Active: true,
	})
	g.adjacency[n0] = append(g.adjacency[n0], idx)
	g.adjacency[n1] = append(g.adjacency[n1], idx)

	return idx, nil
}

// Node returns the node at index n.
// Returns ErrNodeOutOfRange for unknown indices.
func (g *Graph) Node(n int) (*Node, error) {
	if n < 0 || n >= len(g.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, n)
	}

	return &g.nodes[n], nil
}

// Component returns the component at index i, active or not.
// Returns ErrComponentOutOfRange for unknown indices.
func (g *Graph) Component(i int) (*Component, error) {
	if i < 0 || i >= len(g.components) {
		return nil, fmt.Errorf("%w: %d", ErrComponentOutOfRange, i)
	}

	return &g.components[i], nil
}

// NodeCount returns the number of nodes ever created. O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ComponentCount returns the number of components ever created, active or
// not. O(1).
func (g *Graph) ComponentCount() int { return len(g.components) }

// ConnectionsAt returns the indices of the active components incident to
// node n, in insertion order.
// Returns ErrNodeOutOfRange for unknown indices.
// Complexity: O(deg n).
func (g *Graph) ConnectionsAt(n int) ([]int, error) {
	if n < 0 || n >= len(g.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, n)
	}
	var out []int
	for _, ci := range g.adjacency[n] {
		if g.components[ci].Active {
			out = append(out, ci)
		}
	}

	return out, nil
}

// NodeDegree counts the active components incident to node n. It always
// equals len(ConnectionsAt(n)).
// Complexity: O(deg n).
func (g *Graph) NodeDegree(n int) (int, error) {
	if n < 0 || n >= len(g.nodes) {
		return 0, fmt.Errorf("%w: %d", ErrNodeOutOfRange, n)
	}
	deg := 0
	for _, ci := range g.adjacency[n] {
		if g.components[ci].Active {
			deg++
		}
	}

	return deg, nil
}

// ActiveComponentCount counts components still participating in the
// circuit. Complexity: O(M).
func (g *Graph) ActiveComponentCount() int {
	n := 0
	for i := range g.components {
		if g.components[i].Active {
			n++
		}
	}

	return n
}

// Deactivate retires the component at index i. The component keeps its
// storage slot and adjacency entries; queries filter it out. Idempotent.
// Returns ErrComponentOutOfRange for unknown indices.
func (g *Graph) Deactivate(i int) error {
	if i < 0 || i >= len(g.components) {
		return fmt.Errorf("%w: %d", ErrComponentOutOfRange, i)
	}
	g.components[i].Active = false

	return nil
}

// CacheImpedances realizes every active component's kind at ω and stores
// the result; inactive components have their stale cache cleared.
// Complexity: O(M).
func (g *Graph) CacheImpedances(omega units.AngularFrequency) {
	for i := range g.components {
		c := &g.components[i]
		if c.Active {
			c.cached = c.Kind.Impedance(omega)
			c.hasCached = true
		} else {
			c.cached = impedance.Result{}
			c.hasCached = false
		}
	}
}

// SetCachedImpedance stores z as the cached impedance of component i.
// The reducer uses this to seed the cache of a freshly materialized
// equivalent without re-deriving it from the kind.
// Returns ErrComponentOutOfRange for unknown indices.
func (g *Graph) SetCachedImpedance(i int, z impedance.Result) error {
	if i < 0 || i >= len(g.components) {
		return fmt.Errorf("%w: %d", ErrComponentOutOfRange, i)
	}
	g.components[i].cached = z
	g.components[i].hasCached = true

	return nil
}

// SetGround designates node n as the circuit's ground. At most one node is
// ground; a second call moves the designation.
// Returns ErrNodeOutOfRange for unknown indices.
func (g *Graph) SetGround(n int) error {
	if n < 0 || n >= len(g.nodes) {
		return fmt.Errorf("%w: %d", ErrNodeOutOfRange, n)
	}
	g.ground = n

	return nil
}

// IsGround reports whether node n is the designated ground.
func (g *Graph) IsGround(n int) bool {
	return g.ground >= 0 && g.ground == n
}

// Ground returns the ground node index and whether one is designated.
func (g *Graph) Ground() (int, bool) {
	return g.ground, g.ground >= 0
}
