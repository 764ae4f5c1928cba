// Package circuit_test (graph half): construction invariants of the
// multigraph — incidence symmetry, degree queries, active filtering, the
// impedance cache, and ground marking.
package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voltlane/ohmred/circuit"
	"github.com/voltlane/ohmred/impedance"
)

// ladder builds n0 --R100-- n1 --R200-- n2 --R300-- n3 and returns the
// graph plus the node indices.
func ladder(t *testing.T) (*circuit.Graph, []int) {
	t.Helper()
	g := circuit.NewGraph()
	nodes := make([]int, 4)
	for i := range nodes {
		nodes[i] = g.AddNode(string(rune('a' + i)))
	}
	for i, r := range []float64{100, 200, 300} {
		_, err := g.AddComponent("R"+string(rune('1'+i)), resistor(t, r), nodes[i], nodes[i+1])
		require.NoError(t, err)
	}

	return g, nodes
}

// TestAddComponentValidation rejects self-loops, out-of-range endpoints,
// and nil kinds.
func TestAddComponentValidation(t *testing.T) {
	g := circuit.NewGraph()
	n0 := g.AddNode("a")
	n1 := g.AddNode("b")

	_, err := g.AddComponent("R1", resistor(t, 1), n0, n0)
	require.ErrorIs(t, err, circuit.ErrSelfLoop)

	_, err = g.AddComponent("R1", resistor(t, 1), n0, 99)
	require.ErrorIs(t, err, circuit.ErrNodeOutOfRange)
	_, err = g.AddComponent("R1", resistor(t, 1), -1, n1)
	require.ErrorIs(t, err, circuit.ErrNodeOutOfRange)

	_, err = g.AddComponent("R1", nil, n0, n1)
	require.ErrorIs(t, err, circuit.ErrNilKind)

	_, err = g.AddComponent("R1", resistor(t, 1), n0, n1)
	require.NoError(t, err)
}

// TestAccessorRangeChecks on Node/Component/ConnectionsAt/NodeDegree.
func TestAccessorRangeChecks(t *testing.T) {
	g, _ := ladder(t)

	_, err := g.Node(99)
	require.ErrorIs(t, err, circuit.ErrNodeOutOfRange)
	_, err = g.Component(99)
	require.ErrorIs(t, err, circuit.ErrComponentOutOfRange)
	_, err = g.ConnectionsAt(-1)
	require.ErrorIs(t, err, circuit.ErrNodeOutOfRange)
	_, err = g.NodeDegree(4)
	require.ErrorIs(t, err, circuit.ErrNodeOutOfRange)
	err = g.Deactivate(99)
	require.ErrorIs(t, err, circuit.ErrComponentOutOfRange)
	err = g.SetGround(99)
	require.ErrorIs(t, err, circuit.ErrNodeOutOfRange)
}

// TestIncidenceSymmetry: every component appears in the connection list
// of both its endpoints, and nowhere else.
func TestIncidenceSymmetry(t *testing.T) {
	g, _ := ladder(t)

	for ci := 0; ci < g.ComponentCount(); ci++ {
		c, err := g.Component(ci)
		require.NoError(t, err)
		for n := 0; n < g.NodeCount(); n++ {
			conns, err := g.ConnectionsAt(n)
			require.NoError(t, err)
			incident := n == c.Nodes[0] || n == c.Nodes[1]
			require.Equal(t, incident, contains(conns, ci),
				"component %d vs node %d", ci, n)
		}
	}
}

// TestDegreeMatchesConnections: NodeDegree(n) == len(ConnectionsAt(n))
// before and after deactivation.
func TestDegreeMatchesConnections(t *testing.T) {
	g, nodes := ladder(t)

	check := func() {
		for _, n := range nodes {
			deg, err := g.NodeDegree(n)
			require.NoError(t, err)
			conns, err := g.ConnectionsAt(n)
			require.NoError(t, err)
			require.Equal(t, len(conns), deg, "node %d", n)
		}
	}
	check()

	require.NoError(t, g.Deactivate(1))
	check()

	deg, _ := g.NodeDegree(nodes[1])
	require.Equal(t, 1, deg, "middle node lost one active branch")
}

// TestConnectionsFilterInactive: retired components disappear from
// queries but keep their storage slot.
func TestConnectionsFilterInactive(t *testing.T) {
	g, nodes := ladder(t)
	require.Equal(t, 3, g.ActiveComponentCount())

	require.NoError(t, g.Deactivate(0))
	require.Equal(t, 2, g.ActiveComponentCount())
	require.Equal(t, 3, g.ComponentCount(), "storage is never reclaimed")

	conns, err := g.ConnectionsAt(nodes[0])
	require.NoError(t, err)
	require.Empty(t, conns)

	c, err := g.Component(0)
	require.NoError(t, err)
	require.False(t, c.Active)
}

// TestMultiEdges: parallel components between the same pair coexist.
func TestMultiEdges(t *testing.T) {
	g := circuit.NewGraph()
	n0 := g.AddNode("a")
	n1 := g.AddNode("b")
	for i := 0; i < 3; i++ {
		_, err := g.AddComponent("R", resistor(t, 10), n0, n1)
		require.NoError(t, err)
	}

	deg, err := g.NodeDegree(n0)
	require.NoError(t, err)
	require.Equal(t, 3, deg)
}

// TestCacheImpedances populates every active component and clears
// inactive ones.
func TestCacheImpedances(t *testing.T) {
	g, _ := ladder(t)
	require.NoError(t, g.Deactivate(2))

	g.CacheImpedances(omega(t, 1000))

	for i := 0; i < g.ComponentCount(); i++ {
		c, err := g.Component(i)
		require.NoError(t, err)
		z, ok := c.CachedImpedance()
		if c.Active {
			require.True(t, ok, "active component %d must be cached", i)
			require.True(t, z.IsFinite())
		} else {
			require.False(t, ok, "inactive component %d must not be cached", i)
		}
	}
}

// TestSetCachedImpedance seeds a cache entry directly.
func TestSetCachedImpedance(t *testing.T) {
	g, _ := ladder(t)
	want := impedance.Finite(complex(600, 0))

	require.NoError(t, g.SetCachedImpedance(1, want))
	c, _ := g.Component(1)
	z, ok := c.CachedImpedance()
	require.True(t, ok)
	require.Equal(t, want, z)

	require.ErrorIs(t, g.SetCachedImpedance(99, want), circuit.ErrComponentOutOfRange)
}

// TestGround: designation, query, and re-designation.
func TestGround(t *testing.T) {
	g, nodes := ladder(t)

	_, ok := g.Ground()
	require.False(t, ok)
	require.False(t, g.IsGround(nodes[0]))

	require.NoError(t, g.SetGround(nodes[0]))
	require.True(t, g.IsGround(nodes[0]))
	require.False(t, g.IsGround(nodes[1]))

	require.NoError(t, g.SetGround(nodes[3]))
	gn, ok := g.Ground()
	require.True(t, ok)
	require.Equal(t, nodes[3], gn)
	require.False(t, g.IsGround(nodes[0]))
}

// TestOtherEnd resolves the far endpoint of a component.
func TestOtherEnd(t *testing.T) {
	g, nodes := ladder(t)
	c, _ := g.Component(0)

	far, ok := c.OtherEnd(nodes[0])
	require.True(t, ok)
	require.Equal(t, nodes[1], far)

	far, ok = c.OtherEnd(nodes[1])
	require.True(t, ok)
	require.Equal(t, nodes[0], far)

	_, ok = c.OtherEnd(nodes[3])
	require.False(t, ok)
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
