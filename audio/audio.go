// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// IntSource is the lossless-PCM counterpart of Source: samples stay in
// the integer domain at the file's native bit depth instead of being
// normalized to [-1,1]. The declick batch path works on these raw
// values so spike detection and replacement see the file's true
// amplitudes, and the encoder can write them back unmodified.
type IntSource interface {
	SampleRate() int
	Channels() int
	// BitDepth of the PCM stream in bits per sample (e.g., 16, 24).
	BitDepth() int
	// ReadPCM fills dst with interleaved integer samples. Returns the
	// number of values written. When n == 0 with err == io.EOF, the
	// stream is finished.
	ReadPCM(dst []int32) (n int, err error)

	BufSize() int

	Close() error
}

// Decoder constructs a float Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// IntDecoder constructs an IntSource from an input reader.
type IntDecoder interface {
	Decode(r io.Reader) (IntSource, error)
}

// Registry for decoders by format key (e.g., "flac", "wav", "mp3").
// Lossless formats register integer decoders, lossy formats float
// decoders; a format appears on one side only.
type Registry struct {
	codecs    map[string]Decoder
	intCodecs map[string]IntDecoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:    make(map[string]Decoder),
		intCodecs: make(map[string]IntDecoder),
		mtx:       &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

func (r *Registry) RegisterInt(format string, d IntDecoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.intCodecs[format] = d
}

func (r *Registry) GetInt(format string) (IntDecoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.intCodecs[format]
	return d, ok
}
