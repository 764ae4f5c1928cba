package units

import "fmt"

// Value is an optional scalar: either a known value of type T, or a named
// symbolic placeholder to be resolved by a later analysis stage.
//
// The zero Value is Unknown with an empty name; prefer the Known/Unknown
// constructors so intent is explicit.
type Value[T any] struct {
	val   T
	name  string
	known bool
}

// Known wraps a concrete value.
func Known[T any](v T) Value[T] {
	return Value[T]{val: v, known: true}
}

// Unknown names a symbolic placeholder.
func Unknown[T any](name string) Value[T] {
	return Value[T]{name: name}
}

// IsKnown reports whether the value is concrete.
func (v Value[T]) IsKnown() bool { return v.known }

// IsUnknown reports whether the value is a symbolic placeholder.
func (v Value[T]) IsUnknown() bool { return !v.known }

// Get returns the concrete value and true, or the zero value and false
// when the value is symbolic.
func (v Value[T]) Get() (T, bool) { return v.val, v.known }

// MustKnown returns the concrete value and panics on a symbolic one.
// Reserve it for call sites that have already checked IsKnown.
func (v Value[T]) MustKnown() T {
	if !v.known {
		panic(fmt.Sprintf("units: MustKnown called on unknown value %q", v.name))
	}

	return v.val
}

// Name returns the placeholder name; empty for known values.
func (v Value[T]) Name() string { return v.name }
