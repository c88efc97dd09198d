// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/robopeter/depop/audio"
)

// flacReader is an interface for flac.Stream to allow testing
type flacReader interface {
	ParseNext() (*frame.Frame, error)
}

// source wraps mewkiz/flac to implement audio.IntSource. FLAC frames
// arrive one whole block per channel; ReadPCM interleaves them and
// carries any remainder over to the next call.
type source struct {
	dec        flacReader
	sampleRate int
	channels   int
	bitDepth   int

	pending []int32 // interleaved samples not yet handed out
	pos     int
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return s.bitDepth }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if cap(s.pending) > 0 {
		return cap(s.pending)
	}
	return 4096
}

// fetchFrame parses the next FLAC frame into the pending buffer.
func (s *source) fetchFrame() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		if err == io.EOF {
			s.eof = true
			return io.EOF
		}
		return fmt.Errorf("parsing flac frame: %w", err)
	}

	nch := len(f.Subframes)
	if nch == 0 {
		return io.EOF
	}
	blockLen := len(f.Subframes[0].Samples)

	needed := nch * blockLen
	if cap(s.pending) < needed {
		s.pending = make([]int32, needed)
	}
	s.pending = s.pending[:needed]

	for c := 0; c < nch; c++ {
		samples := f.Subframes[c].Samples
		for i := 0; i < blockLen; i++ {
			s.pending[i*nch+c] = samples[i]
		}
	}
	s.pos = 0

	return nil
}

func (s *source) ReadPCM(dst []int32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		if s.pos >= len(s.pending) {
			if s.eof {
				break
			}
			if err := s.fetchFrame(); err != nil {
				if err == io.EOF {
					break
				}
				return written, err
			}
		}

		n := copy(dst[written:], s.pending[s.pos:])
		written += n
		s.pos += n
	}

	if written == 0 {
		return 0, io.EOF
	}
	if s.eof && s.pos >= len(s.pending) {
		return written, io.EOF
	}
	return written, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.IntSource, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("parsing flac stream: %w", err)
	}

	info := stream.Info
	if info == nil {
		return nil, ErrMissingStreamInfo
	}

	return &source{
		dec:        stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
