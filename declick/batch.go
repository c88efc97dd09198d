// SPDX-License-Identifier: EPL-2.0

package declick

// Clean runs the declick filter over all of in and returns a new,
// cleaned slice of the same length. The input is padded once with the
// domain's sentinel extremes (two on each side) so that every sample,
// including the first and last two, is evaluated against a full
// five-sample window.
//
// Clean allocates the padded copy and the output; for repeated calls
// on a real-time path use a Streamer instead.
func Clean[T Sample, W wide](dom Domain[T, W], in []T) []T {
	out := make([]T, len(in))
	if len(in) == 0 {
		return out
	}

	padded := make([]T, len(in)+4)
	padded[0] = dom.Max
	padded[1] = dom.Min
	copy(padded[2:], in)
	padded[len(in)+2] = dom.Max
	padded[len(in)+3] = dom.Min

	for i := range out {
		out[i] = dom.Eval(padded[i], padded[i+1], padded[i+2], padded[i+3], padded[i+4])
	}

	return out
}
