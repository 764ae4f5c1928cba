package reduce

import (
	"fmt"

	"github.com/voltlane/ohmred/circuit"
	"github.com/voltlane/ohmred/impedance"
	"github.com/voltlane/ohmred/units"
)

// Reduce rewrites g at angular frequency ω until no series or parallel
// reduction applies, and returns the ordered log of applied steps.
//
// Reduce is the sole mutator of g for the duration of the call: it caches
// impedances, retires merged components, and appends equivalents. On a
// rewrite error the log built so far is discarded and the graph state is
// unspecified.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be well-formed (WithMaxSteps panics on negative caps).
//
// Complexity: O(S · (N + M)) time, O(S) extra memory for the step log.
func Reduce(g *circuit.Graph, omega units.AngularFrequency, opts ...Option) ([]Step, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Realize every active component at ω before any rewriting.
	g.CacheImpedances(omega)

	// 4) Run the fixed-point loop.
	r := &runner{g: g, omega: omega, options: cfg}

	return r.run()
}

// runner holds the mutable state of one Reduce execution.
type runner struct {
	g       *circuit.Graph
	omega   units.AngularFrequency
	options Options
	steps   []Step
	eqSeq   int // sequence for equivalent-component ids
}

// run alternates series and parallel discovery until neither fires or the
// optional step cap is reached.
func (r *runner) run() ([]Step, error) {
	for {
		if r.options.MaxSteps > 0 && len(r.steps) >= r.options.MaxSteps {
			break
		}
		step, ok := r.findSeries()
		if !ok {
			step, ok = r.findParallel()
		}
		if !ok {
			break
		}
		if err := r.apply(&step); err != nil {
			return nil, err
		}
		r.steps = append(r.steps, step)
	}

	return r.steps, nil
}

// impedanceOf reads a component's cached impedance, falling back to a
// fresh realization at ω if the cache is somehow empty.
func (r *runner) impedanceOf(c *circuit.Component) impedance.Result {
	if z, ok := c.CachedImpedance(); ok {
		return z
	}

	return c.Kind.Impedance(r.omega)
}

// findSeries scans nodes in ascending index order for a series pivot: a
// non-ground node of degree 2 whose two incident components are passive.
// A pivot whose outer endpoints coincide would collapse into a self-loop
// and is skipped in favor of the next candidate.
func (r *runner) findSeries() (Step, bool) {
	for n := 0; n < r.g.NodeCount(); n++ {
		if r.g.IsGround(n) {
			continue
		}
		conns, err := r.g.ConnectionsAt(n)
		if err != nil || len(conns) != 2 {
			continue
		}
		c1, _ := r.g.Component(conns[0])
		c2, _ := r.g.Component(conns[1])
		if !c1.Kind.IsPassive() || !c2.Kind.IsPassive() {
			continue
		}
		outer1, ok1 := c1.OtherEnd(n)
		outer2, ok2 := c2.OtherEnd(n)
		if !ok1 || !ok2 {
			continue
		}
		if outer1 == outer2 {
			// Both outers are the same node: merging would self-loop.
			continue
		}
		z := impedance.CombineSeries(r.impedanceOf(c1), r.impedanceOf(c2))

		return Step{
			Kind:       Series,
			Components: []int{conns[0], conns[1]},
			Impedance:  z,
			Endpoints:  [2]int{outer1, outer2},
		}, true
	}

	return Step{}, false
}

// findParallel partitions active passive components by unordered endpoint
// pair and picks the largest class of size ≥ 2, breaking ties in favor of
// the class whose first member has the lowest index. The ascending
// component scan makes the choice deterministic.
func (r *runner) findParallel() (Step, bool) {
	groups := make(map[[2]int][]int)
	var order [][2]int
	for i := 0; i < r.g.ComponentCount(); i++ {
		c, _ := r.g.Component(i)
		if !c.Active || !c.Kind.IsPassive() {
			continue
		}
		key := c.Nodes
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var best []int
	var bestKey [2]int
	for _, key := range order {
		members := groups[key]
		if len(members) < 2 {
			continue
		}
		if len(members) > len(best) {
			best, bestKey = members, key
		}
	}
	if best == nil {
		return Step{}, false
	}

	zs := make([]impedance.Result, len(best))
	for i, ci := range best {
		c, _ := r.g.Component(ci)
		zs[i] = r.impedanceOf(c)
	}

	return Step{
		Kind:       Parallel,
		Components: best,
		Impedance:  impedance.CombineParallelMany(zs),
		Endpoints:  bestKey,
	}, true
}

// apply retires the step's members and materializes the equivalent as a
// real component with its impedance cached, recording its index in the
// step. A failure to realize the impedance as a component kind surfaces
// as ErrRewrite.
func (r *runner) apply(step *Step) error {
	for _, ci := range step.Components {
		if err := r.g.Deactivate(ci); err != nil {
			return fmt.Errorf("%w: %v", ErrRewrite, err)
		}
	}

	kind, err := circuit.KindFromImpedance(step.Impedance)
	if err != nil {
		// Keep the validation sentinel inspectable through the wrap.
		return fmt.Errorf("%w: %w", ErrRewrite, err)
	}

	r.eqSeq++
	eq, err := r.g.AddComponent(fmt.Sprintf("EQ%d", r.eqSeq), kind, step.Endpoints[0], step.Endpoints[1])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRewrite, err)
	}
	if err = r.g.SetCachedImpedance(eq, step.Impedance); err != nil {
		return fmt.Errorf("%w: %v", ErrRewrite, err)
	}
	step.Equivalent = eq

	return nil
}
