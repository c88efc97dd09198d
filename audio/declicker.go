// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/robopeter/depop/declick"
	"github.com/robopeter/depop/meter"
)

// Declicker wraps a mono float Source and removes single-sample pops
// from everything read through it. Each read is cleaned in place in
// dst using a preallocated scratch buffer, so steady-state reads do
// not allocate.
//
// Block-size caveat: every chunk is padded with sentinel extremes
// independently, so samples adjacent to a chunk boundary are shielded
// from detection there (see the declick package docs).
type Declicker struct {
	src      Source
	streamer *declick.Streamer[float32, float64]
	peak     *meter.Peak
}

// NewDeclicker wraps src. The channel-count policy lives here, at the
// boundary: multi-channel sources are rejected with ErrNotMono, and
// callers mix down first (e.g. with MonoMixer) when that is what they
// want.
func NewDeclicker(src Source, maxBlock int) (*Declicker, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}
	if maxBlock <= 0 {
		maxBlock = 4096
	}

	return &Declicker{
		src:      src,
		streamer: declick.NewStreamer(declick.Float32, maxBlock),
	}, nil
}

func (d *Declicker) SampleRate() int { return d.src.SampleRate() }
func (d *Declicker) Channels() int   { return 1 }
func (d *Declicker) BufSize() int    { return d.src.BufSize() }

func (d *Declicker) Close() error {
	err := d.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// SetMeter attaches a peak meter that is updated with every cleaned
// read; nil detaches it. Attach only while a display is actually
// observing the meter, and not concurrently with ReadSamples.
func (d *Declicker) SetMeter(p *meter.Peak) {
	d.peak = p
}

// ReadSamples reads from the wrapped source and cleans the returned
// samples in place.
func (d *Declicker) ReadSamples(dst []float32) (int, error) {
	n, err := d.src.ReadSamples(dst)

	maxBlock := d.streamer.MaxBlock()
	for start := 0; start < n; start += maxBlock {
		end := min(start+maxBlock, n)
		d.streamer.Process(dst[start:end])
	}

	if d.peak != nil && n > 0 {
		d.peak.Update(dst[:n])
	}

	return n, err
}
