// SPDX-License-Identifier: EPL-2.0

package depop

import (
	"fmt"
	"io"

	"github.com/robopeter/depop/audio"
	"github.com/robopeter/depop/declick"
	"github.com/robopeter/depop/formats/wav"
	"github.com/robopeter/depop/utils"
)

// CleanPCM drains a mono lossless source and returns its samples with
// single-sample pops removed. The samples stay in the source's native
// integer domain, so callers can re-encode them together with the
// original sample-rate and bit-depth metadata.
//
// Multi-channel sources are rejected with audio.ErrNotMono.
func CleanPCM(src audio.IntSource) ([]int32, error) {
	pcm, err := audio.CollectPCM(src)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return declick.Clean(declick.Int32, pcm), nil
}

// CleanToWAV runs the whole batch path: drain a mono lossless source,
// declick it, and write the result as a WAV file carrying the
// source's original sample rate and bit depth.
func CleanToWAV(w io.WriteSeeker, src audio.IntSource) error {
	cleaned, err := CleanPCM(src)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.WritePCM(w, src.SampleRate(), src.BitDepth(), cleaned); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// CleanToWAV16 is the streaming float path: declick a float source
// block by block and write the result as 16-bit mono WAV at the
// source's sample rate. Multi-channel sources are mixed down to mono
// first.
//
// This is the route for lossy inputs, which have no raw integer PCM
// to preserve.
func CleanToWAV16(w io.WriteSeeker, src audio.Source, bufferSize int) error {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	mono := src
	if src.Channels() != 1 {
		mono = audio.NewMonoMixer(src)
	}

	dc, err := audio.NewDeclicker(mono, bufferSize)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	// Pre-allocate for roughly two seconds to cut early regrowth.
	pcm16 := make([]int16, 0, mono.SampleRate()*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := dc.ReadSamples(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := wav.WriteWAV16(w, dc.SampleRate(), pcm16); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
