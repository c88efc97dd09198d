// SPDX-License-Identifier: EPL-2.0

// Package effect hosts the real-time declick processor: one declick
// Streamer plus one peak meter, driven once per audio block per
// channel stream by an audio host.
package effect

import (
	"github.com/robopeter/depop/declick"
	"github.com/robopeter/depop/meter"
)

// Processor cleans float32 audio blocks in place and keeps the peak
// meter current for an attached display. One Processor serves exactly
// one channel stream; the host calls Process synchronously on its
// processing thread, and Process neither allocates nor blocks.
type Processor struct {
	streamer *declick.Streamer[float32, float64]
	peak     *meter.Peak
}

// NewProcessor returns a Processor for blocks of up to maxBlock
// samples at the given sample rate.
func NewProcessor(sampleRate float64, maxBlock int) *Processor {
	return &Processor{
		streamer: declick.NewStreamer(declick.Float32, maxBlock),
		peak:     meter.New(sampleRate),
	}
}

// SetSampleRate recalibrates the meter decay. Call it when the host
// reconfigures the stream, before processing resumes.
func (p *Processor) SetSampleRate(sampleRate float64) {
	p.peak.SetSampleRate(sampleRate)
}

// Process cleans block in place. When displayActive is true the
// cleaned block is folded into the peak meter as well; hosts should
// pass false while no display is observing the meter to skip that
// cost. Blocks longer than the maxBlock given to NewProcessor violate
// the contract and panic.
func (p *Processor) Process(block []float32, displayActive bool) {
	p.streamer.Process(block)
	if displayActive {
		p.peak.Update(block)
	}
}

// Meter returns the peak meter for a display reader. The reader may
// call Value at its own cadence from another goroutine.
func (p *Processor) Meter() *meter.Peak {
	return p.peak
}

// MaxBlock returns the largest block length Process accepts.
func (p *Processor) MaxBlock() int {
	return p.streamer.MaxBlock()
}
