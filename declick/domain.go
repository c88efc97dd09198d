// SPDX-License-Identifier: EPL-2.0

package declick

import "math"

// Sample is a PCM sample in one of the two supported domains: 32-bit
// signed integer (lossless file data) or 32-bit float (real-time data).
type Sample interface {
	~int32 | ~float32
}

// wide is the widened arithmetic type paired with a Sample domain.
// Thresholds are computed here so that max+min cannot overflow.
type wide interface {
	~int64 | ~float64
}

// Domain bundles the per-domain arithmetic the window evaluator needs:
// the sentinel extremes used for padding, widening into threshold
// precision, and narrowing a widened average back into the domain.
type Domain[T Sample, W wide] struct {
	// Max and Min are the domain's extreme representable values. They
	// are written as sentinel padding so that the first and last two
	// real samples see an effectively unbounded neighbor spread and
	// are never flagged for lack of a real neighbor.
	Max T
	Min T

	Widen func(T) W

	// Narrow converts a widened replacement value back into the
	// domain. The integer domain saturates instead of wrapping.
	Narrow func(W) T
}

// Eval decides the value to use in place of c, the center of the
// five-sample window (a, b, c, d, e). The four neighbors span
// [min, max]; c is an outlier iff it falls outside avg ± 2*distance,
// in which case avg replaces it. Windows over steep transients have a
// large distance and tolerate proportionally larger swings, so the
// threshold adapts to local signal dynamics.
func (dom Domain[T, W]) Eval(a, b, c, d, e T) T {
	lo := min(a, b, d, e)
	hi := max(a, b, d, e)

	distance := dom.Widen(hi) - dom.Widen(lo)
	avg := (dom.Widen(hi) + dom.Widen(lo)) / 2
	point := dom.Widen(c)

	if point > avg+2*distance || point < avg-2*distance {
		return dom.Narrow(avg)
	}

	return c
}

// Int32 is the lossless-PCM domain. Averages are formed in int64 with
// truncating division; narrowing saturates to the int32 range.
var Int32 = Domain[int32, int64]{
	Max:   math.MaxInt32,
	Min:   math.MinInt32,
	Widen: func(v int32) int64 { return int64(v) },
	Narrow: func(v int64) int32 {
		if v > math.MaxInt32 {
			return math.MaxInt32
		}
		if v < math.MinInt32 {
			return math.MinInt32
		}
		return int32(v)
	},
}

// Float32 is the real-time domain. Averages are formed in float64;
// narrowing uses Go's float64-to-float32 conversion, which rounds to
// nearest, ties to even.
var Float32 = Domain[float32, float64]{
	Max:    math.MaxFloat32,
	Min:    -math.MaxFloat32,
	Widen:  func(v float32) float64 { return float64(v) },
	Narrow: func(v float64) float32 { return float32(v) },
}
