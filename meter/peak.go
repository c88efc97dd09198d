// SPDX-License-Identifier: EPL-2.0

// Package meter provides a lock-free smoothed amplitude meter shared
// between an audio processing thread and a display reader.
package meter

import (
	"math"
	"sync/atomic"
)

// DecayMS is the time it takes the meter to decay by 12 dB after the
// signal drops to complete silence.
const DecayMS = 150.0

// Peak holds one smoothed peak-amplitude scalar in linear-gain units.
// It has exactly one writer (the processing thread, via Update) and
// tolerates an independent reader calling Value at its own cadence;
// the value is advisory display state, so staleness between the two
// is acceptable and no lock is used.
//
// The zero value reads as 0 linear gain (negative infinity dB).
type Peak struct {
	bits atomic.Uint32

	// decay is the per-block smoothing factor. Written only from the
	// processing side (construction or reconfiguration), never while
	// Update is running.
	decay float32
}

// New returns a Peak calibrated for sampleRate.
func New(sampleRate float64) *Peak {
	p := &Peak{}
	p.SetSampleRate(sampleRate)
	return p
}

// SetSampleRate recalibrates the decay weight so that DecayMS of
// silence drops the reading by 12 dB. Call it at initialization and
// whenever the host reconfigures the sample rate, from the processing
// side only.
func (p *Peak) SetSampleRate(sampleRate float64) {
	p.decay = float32(math.Pow(0.25, 1/(sampleRate*DecayMS/1000)))
}

// Update folds one processed block into the meter. The block's mean
// absolute amplitude replaces the reading when it rises above it;
// otherwise the reading decays toward it, one pole per block. Rises
// are therefore tracked within a single block while falls decay
// geometrically.
func (p *Peak) Update(block []float32) {
	if len(block) == 0 {
		return
	}

	var sum float32
	for _, v := range block {
		if v < 0 {
			v = -v
		}
		sum += v
	}
	amplitude := sum / float32(len(block))

	current := p.Value()
	next := amplitude
	if amplitude <= current {
		next = current*p.decay + amplitude*(1-p.decay)
	}

	p.bits.Store(math.Float32bits(next))
}

// Value returns the current reading in linear-gain units. It is safe
// to call from a goroutine other than the writer's.
func (p *Peak) Value() float32 {
	return math.Float32frombits(p.bits.Load())
}

// ValueDB returns the current reading in decibels, negative infinity
// for silence.
func (p *Peak) ValueDB() float64 {
	v := float64(p.Value())
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
