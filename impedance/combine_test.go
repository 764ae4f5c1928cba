// Package impedance_test verifies the algebraic laws of the extended
// domain: identities, absorbers, commutativity, associativity within
// float tolerance, and passivity preservation.
package impedance_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voltlane/ohmred/impedance"
)

// samples covers all three cases of the domain, including reactive and
// boundary values.
var samples = []impedance.Result{
	impedance.Open(),
	impedance.Short(),
	impedance.Finite(complex(100, 0)),
	impedance.Finite(complex(0, 50)),
	impedance.Finite(complex(3, -4)),
	impedance.Finite(complex(0.25, 1000)),
}

// approxEqual compares two results, with tolerance on the finite case.
func approxEqual(t *testing.T, a, b impedance.Result, tol float64) {
	t.Helper()
	require.Equal(t, a.IsOpen(), b.IsOpen())
	require.Equal(t, a.IsShort(), b.IsShort())
	za, aFinite := a.Complex()
	zb, _ := b.Complex()
	if aFinite {
		require.InDelta(t, 0, cmplx.Abs(za-zb), tol, "%v vs %v", a, b)
	}
}

// TestNewValidation rejects NaN/Inf parts and preserves finite zero.
func TestNewValidation(t *testing.T) {
	_, err := impedance.New(cmplx.Inf())
	require.ErrorIs(t, err, impedance.ErrNonFinite)
	_, err = impedance.New(cmplx.NaN())
	require.ErrorIs(t, err, impedance.ErrNonFinite)

	z, err := impedance.New(0)
	require.NoError(t, err)
	require.True(t, z.IsFinite(), "Finite(0) must not fold to Short")
	require.False(t, z.IsShort())
}

// TestSeriesIdentityAndAnnihilator: Short is the identity, Open absorbs.
func TestSeriesIdentityAndAnnihilator(t *testing.T) {
	for _, a := range samples {
		require.Equal(t, a, impedance.CombineSeries(a, impedance.Short()), "a + Short = a for %v", a)
		require.Equal(t, a, impedance.CombineSeries(impedance.Short(), a), "Short + a = a for %v", a)
		require.True(t, impedance.CombineSeries(a, impedance.Open()).IsOpen(), "a + Open = Open for %v", a)
		require.True(t, impedance.CombineSeries(impedance.Open(), a).IsOpen())
	}
}

// TestParallelIdentityAndAnnihilator: Open is the identity, Short absorbs.
func TestParallelIdentityAndAnnihilator(t *testing.T) {
	for _, a := range samples {
		require.Equal(t, a, impedance.CombineParallel(a, impedance.Open()), "a ∥ Open = a for %v", a)
		require.Equal(t, a, impedance.CombineParallel(impedance.Open(), a), "Open ∥ a = a for %v", a)
		require.True(t, impedance.CombineParallel(a, impedance.Short()).IsShort(), "a ∥ Short = Short for %v", a)
		require.True(t, impedance.CombineParallel(impedance.Short(), a).IsShort())
	}
}

// TestCommutativity of both operations over the sample grid.
func TestCommutativity(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			approxEqual(t, impedance.CombineSeries(a, b), impedance.CombineSeries(b, a), 1e-12)
			approxEqual(t, impedance.CombineParallel(a, b), impedance.CombineParallel(b, a), 1e-12)
		}
	}
}

// TestAssociativity within a relaxed tolerance.
func TestAssociativity(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				sL := impedance.CombineSeries(impedance.CombineSeries(a, b), c)
				sR := impedance.CombineSeries(a, impedance.CombineSeries(b, c))
				approxEqual(t, sL, sR, 1e-9)

				pL := impedance.CombineParallel(impedance.CombineParallel(a, b), c)
				pR := impedance.CombineParallel(a, impedance.CombineParallel(b, c))
				approxEqual(t, pL, pR, 1e-9)
			}
		}
	}
}

// TestSeriesArithmetic checks the plain finite case.
func TestSeriesArithmetic(t *testing.T) {
	z := impedance.CombineSeries(impedance.Finite(complex(100, 5)), impedance.Finite(complex(200, -3)))
	v, ok := z.Complex()
	require.True(t, ok)
	require.Equal(t, complex(300, 2), v)
}

// TestParallelArithmetic: two equal resistances halve.
func TestParallelArithmetic(t *testing.T) {
	z := impedance.CombineParallel(impedance.Finite(100), impedance.Finite(100))
	v, ok := z.Complex()
	require.True(t, ok)
	require.InDelta(t, 50, real(v), 1e-12)
	require.InDelta(t, 0, imag(v), 1e-12)
}

// TestParallelFiniteZero routes a zero operand through Short instead of
// dividing by it.
func TestParallelFiniteZero(t *testing.T) {
	require.True(t, impedance.CombineParallel(impedance.Finite(0), impedance.Finite(100)).IsShort())
	require.True(t, impedance.CombineParallel(impedance.Finite(100), impedance.Finite(0)).IsShort())
}

// TestParallelResonance: admittances that cancel exactly block the pair.
func TestParallelResonance(t *testing.T) {
	z := impedance.CombineParallel(impedance.Finite(complex(0, 10)), impedance.Finite(complex(0, -10)))
	require.True(t, z.IsOpen())
}

// TestSeriesMany: any Open element dominates; Shorts drop out of the sum;
// an all-Short (or empty) chain is Short.
func TestSeriesMany(t *testing.T) {
	withOpen := []impedance.Result{impedance.Finite(10), impedance.Open(), impedance.Short()}
	require.True(t, impedance.CombineSeriesMany(withOpen).IsOpen())

	chain := []impedance.Result{impedance.Short(), impedance.Finite(10), impedance.Short(), impedance.Finite(complex(5, 2))}
	v, ok := impedance.CombineSeriesMany(chain).Complex()
	require.True(t, ok)
	require.Equal(t, complex(15, 2), v)

	require.True(t, impedance.CombineSeriesMany([]impedance.Result{impedance.Short(), impedance.Short()}).IsShort())
	require.True(t, impedance.CombineSeriesMany(nil).IsShort())
}

// TestParallelMany: any Short element dominates; Opens drop out of the
// admittance sum; an all-Open (or empty) bank is Open.
func TestParallelMany(t *testing.T) {
	withShort := []impedance.Result{impedance.Finite(10), impedance.Short(), impedance.Finite(20)}
	require.True(t, impedance.CombineParallelMany(withShort).IsShort())

	bank := []impedance.Result{impedance.Finite(100), impedance.Open(), impedance.Finite(100)}
	v, ok := impedance.CombineParallelMany(bank).Complex()
	require.True(t, ok)
	require.InDelta(t, 50, real(v), 1e-12)

	require.True(t, impedance.CombineParallelMany([]impedance.Result{impedance.Open(), impedance.Open()}).IsOpen())
	require.True(t, impedance.CombineParallelMany(nil).IsOpen())
}

// TestPassivityPreservation: non-negative real parts in, non-negative
// real part out, for both operations over the passive sample grid.
func TestPassivityPreservation(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			require.True(t, a.Passive() && b.Passive(), "sample grid must be passive")
			require.True(t, impedance.CombineSeries(a, b).Passive(), "series(%v, %v)", a, b)
			require.True(t, impedance.CombineParallel(a, b).Passive(), "parallel(%v, %v)", a, b)
		}
	}
}

// TestString renders the three cases.
func TestString(t *testing.T) {
	require.Equal(t, "Open", impedance.Open().String())
	require.Equal(t, "Short", impedance.Short().String())
	require.Contains(t, impedance.Finite(complex(3, 4)).String(), "Ω")
}
