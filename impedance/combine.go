package impedance

// CombineSeries adds two impedances along a series path.
//
// Laws:
//   - Open + anything = Open (a broken branch propagates).
//   - Short is the two-sided identity.
//   - Finite(a) + Finite(b) = Finite(a+b).
//
// Complexity: O(1).
func CombineSeries(a, b Result) Result {
	switch {
	case a.IsOpen() || b.IsOpen():
		return Open()
	case a.IsShort() && b.IsShort():
		return Short()
	case a.IsShort():
		return b
	case b.IsShort():
		return a
	default:
		return Finite(a.z + b.z)
	}
}

// CombineParallel merges two impedances sharing both endpoints, working in
// admittance Y = 1/Z.
//
// Laws:
//   - Short ∥ anything = Short (the wire dominates).
//   - Open is the two-sided identity.
//   - Finite(a) ∥ Finite(b) = Finite(1 / (1/a + 1/b)).
//
// A finite zero operand short-circuits the pair: the division is routed
// through the Short case rather than performed.
//
// Complexity: O(1).
func CombineParallel(a, b Result) Result {
	switch {
	case a.IsShort() || b.IsShort():
		return Short()
	case a.IsOpen() && b.IsOpen():
		return Open()
	case a.IsOpen():
		return b
	case b.IsOpen():
		return a
	case a.z == 0 || b.z == 0:
		return Short()
	default:
		y := 1/a.z + 1/b.z
		if y == 0 {
			// Admittances cancel (e.g. L ∥ C at resonance): the pair blocks.
			return Open()
		}
		return Finite(1 / y)
	}
}

// CombineSeriesMany folds a whole series chain:
//   - Open if any element is Open;
//   - otherwise the Finite sum of the finite elements (Short adds nothing);
//   - Short when nothing finite remains after filtering.
//
// Complexity: O(n).
func CombineSeriesMany(zs []Result) Result {
	var sum complex128
	finite := false
	for _, z := range zs {
		if z.IsOpen() {
			return Open()
		}
		if z.IsFinite() {
			sum += z.z
			finite = true
		}
	}
	if !finite {
		return Short()
	}

	return Finite(sum)
}

// CombineParallelMany folds a whole parallel bank:
//   - Short if any element is Short (or a finite zero);
//   - Open when nothing finite remains after filtering Open elements;
//   - otherwise Finite(1 / Σ 1/zᵢ).
//
// Complexity: O(n).
func CombineParallelMany(zs []Result) Result {
	var ySum complex128
	finite := false
	for _, z := range zs {
		if z.IsShort() {
			return Short()
		}
		if z.IsFinite() {
			if z.z == 0 {
				return Short()
			}
			ySum += 1 / z.z
			finite = true
		}
	}
	if !finite || ySum == 0 {
		return Open()
	}

	return Finite(1 / ySum)
}
