package reduce

import (
	"errors"

	"github.com/voltlane/ohmred/impedance"
)

// Sentinel errors returned by Reduce.
var (
	// ErrNilGraph indicates a nil *circuit.Graph was passed to Reduce.
	ErrNilGraph = errors.New("reduce: graph is nil")

	// ErrRewrite indicates an equivalent impedance could not be realized
	// as a component kind. The underlying validation failure is attached
	// with %w for errors.Is inspection.
	ErrRewrite = errors.New("reduce: cannot materialize equivalent component")

	// ErrBadMaxSteps indicates WithMaxSteps was given a negative cap.
	ErrBadMaxSteps = errors.New("reduce: MaxSteps must be non-negative")
)

// StepKind names the rewrite rule that produced a Step.
type StepKind uint8

const (
	// Series collapses two components meeting at a degree-2 pivot node.
	Series StepKind = iota

	// Parallel collapses a class of components sharing both endpoints.
	Parallel

	// DeltaWye is reserved for a future Δ–Y transform; no discovery rule
	// produces it today.
	DeltaWye
)

// String returns the step kind name for logs.
func (k StepKind) String() string {
	switch k {
	case Series:
		return "series"
	case Parallel:
		return "parallel"
	case DeltaWye:
		return "delta-wye"
	default:
		return "unknown"
	}
}

// Step records one applied reduction. Component references are indices
// into the graph's append-only arena, so a log stays valid (and trivially
// serializable) for the lifetime of the graph.
type Step struct {
	// Kind is the rewrite rule applied.
	Kind StepKind

	// Components are the indices of the retired members, in discovery
	// order (ascending for parallel classes).
	Components []int

	// Equivalent is the index of the materialized replacement component.
	Equivalent int

	// Impedance is the equivalent's value in the extended domain.
	Impedance impedance.Result

	// Endpoints are the nodes the equivalent now spans: the outer nodes
	// of a series pivot, or the shared pair of a parallel class.
	Endpoints [2]int

	// Delta and Wye describe a Δ–Y rewrite. Reserved: only meaningful for
	// Kind == DeltaWye, which is never produced today.
	Delta [3]int
	Wye   int
}

// Options configures a Reduce run.
//
// MaxSteps – optional safety cap on applied steps; 0 means unlimited.
// The active-component count already bounds the loop, so the cap is only
// useful for instrumentation and bisection.
type Options struct {
	MaxSteps int
}

// Option is a functional option for configuring Reduce.
type Option func(*Options)

// WithMaxSteps caps the number of applied steps. Zero means unlimited;
// a negative cap panics with ErrBadMaxSteps when WithMaxSteps is called.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic(ErrBadMaxSteps.Error())
	}

	return func(o *Options) {
		o.MaxSteps = n
	}
}

// DefaultOptions returns the default configuration: no step cap.
func DefaultOptions() Options {
	return Options{MaxSteps: 0}
}
