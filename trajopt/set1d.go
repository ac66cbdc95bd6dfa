package trajopt

import "math"

// IntervalSet1d is a declarative bound on a scalar: [Lower, Upper]. Either end may
// be infinite to leave that side unbounded.
type IntervalSet1d struct {
	Lower float64
	Upper float64
}

// NewIntervalSet1d returns the interval [lower, upper].
func NewIntervalSet1d(lower, upper float64) IntervalSet1d {
	return IntervalSet1d{Lower: lower, Upper: upper}
}

// ExactIntervalSet1d returns the degenerate interval that pins a scalar to v.
func ExactIntervalSet1d(v float64) IntervalSet1d {
	return IntervalSet1d{Lower: v, Upper: v}
}

// LowerBoundedIntervalSet1d returns [lower, +inf).
func LowerBoundedIntervalSet1d(lower float64) IntervalSet1d {
	return IntervalSet1d{Lower: lower, Upper: math.Inf(1)}
}

// UpperBoundedIntervalSet1d returns (-inf, upper].
func UpperBoundedIntervalSet1d(upper float64) IntervalSet1d {
	return IntervalSet1d{Lower: math.Inf(-1), Upper: upper}
}

// UnboundedIntervalSet1d returns (-inf, +inf).
func UnboundedIntervalSet1d() IntervalSet1d {
	return IntervalSet1d{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// IsExact reports whether the interval pins its scalar to a single value.
func (i IntervalSet1d) IsExact() bool {
	return i.Lower == i.Upper
}

// IsLowerBounded reports whether Lower is a real (non -inf) bound.
func (i IntervalSet1d) IsLowerBounded() bool {
	return !math.IsInf(i.Lower, -1)
}

// IsUpperBounded reports whether Upper is a real (non +inf) bound.
func (i IntervalSet1d) IsUpperBounded() bool {
	return !math.IsInf(i.Upper, 1)
}
