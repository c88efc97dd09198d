// SPDX-License-Identifier: EPL-2.0

package declick

// Streamer applies the declick filter to caller-supplied blocks in
// place without allocating. The scratch buffer is sized once at
// construction and reused for every call, which keeps Process safe
// for a real-time processing thread.
//
// A Streamer is owned by exactly one channel stream. It must not be
// shared between channels or called from more than one goroutine.
type Streamer[T Sample, W wide] struct {
	dom     Domain[T, W]
	scratch []T
}

// NewStreamer returns a Streamer able to process blocks of up to
// maxBlock samples.
func NewStreamer[T Sample, W wide](dom Domain[T, W], maxBlock int) *Streamer[T, W] {
	if maxBlock < 0 {
		maxBlock = 0
	}
	return &Streamer[T, W]{
		dom:     dom,
		scratch: make([]T, maxBlock+4),
	}
}

// MaxBlock returns the largest block length Process accepts.
func (s *Streamer[T, W]) MaxBlock() int {
	return len(s.scratch) - 4
}

// Process cleans block in place. Each call pads the block with the
// domain's sentinel extremes independently; no neighbor continuity is
// carried across successive blocks, so a single call over a whole
// signal produces exactly what Clean produces.
//
// Passing a block longer than MaxBlock violates the Streamer's
// contract and panics before anything is written.
func (s *Streamer[T, W]) Process(block []T) {
	if len(block)+4 > len(s.scratch) {
		panic("declick: block exceeds Streamer capacity")
	}

	w := s.scratch
	w[0] = s.dom.Max
	w[1] = s.dom.Min
	copy(w[2:], block)
	w[len(block)+2] = s.dom.Max
	w[len(block)+3] = s.dom.Min

	for i := range block {
		block[i] = s.dom.Eval(w[i], w[i+1], w[i+2], w[i+3], w[i+4])
	}
}
