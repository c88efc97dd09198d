// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WritePCM writes mono PCM samples as a WAV file at the given sample
// rate and bit depth. Samples are written as-is: the caller supplies
// them in the range of the stated bit depth, which is how the batch
// path hands back cleaned lossless data together with its original
// metadata.
func WritePCM(w io.WriteSeeker, sampleRate, bitDepth int, samples []int32) error {
	enc := gowav.NewEncoder(w, sampleRate, bitDepth, 1, 1)

	// Write in chunks to bound the int conversion buffer.
	const chunkSize = 8192

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, min(len(samples), chunkSize)),
	}

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]

		buf.Data = buf.Data[:len(chunk)]
		for j, s := range chunk {
			buf.Data[j] = int(s)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteWAV16 writes mono 16-bit PCM samples as a WAV file at
// sampleRate. Convenience wrapper over WritePCM for the streaming
// float path, whose output is 16-bit.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	data := make([]int32, len(samples))
	for i, s := range samples {
		data[i] = int32(s)
	}

	return WritePCM(w, sampleRate, 16, data)
}
