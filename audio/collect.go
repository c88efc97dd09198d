// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// CollectPCM drains a mono IntSource into a single slice of raw
// integer samples. This is the front half of the batch path: decode
// everything, then hand the whole channel to the declick batch driver.
//
// Multi-channel sources are rejected with ErrNotMono; splitting or
// mixing channels is a caller decision, not something this boundary
// does silently.
func CollectPCM(src IntSource) ([]int32, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}

	// Estimate a couple of seconds up front to cut early regrowth.
	samples := make([]int32, 0, src.SampleRate()*2)
	buf := make([]int32, bufSize)

	for {
		n, err := src.ReadPCM(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}
