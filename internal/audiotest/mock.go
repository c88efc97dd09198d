// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates float audio data.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		generated:    0,
		waveform:     waveform,
	}
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// NewSpikeSource creates a mono source that is silent except for
// single-sample pops at the given positions.
func NewSpikeSource(sampleRate, totalSamples int, amplitude float32, positions ...int) *MockSource {
	spikes := make(map[int]bool, len(positions))
	for _, p := range positions {
		spikes[p] = true
	}
	return NewMockSource(sampleRate, 1, totalSamples, func(sample int, channel int) float32 {
		if spikes[sample] {
			return amplitude
		}
		return 0
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := min(framesRequested, framesAvailable)

	for frame := 0; frame < framesToWrite; frame++ {
		sampleIndex := m.generated + frame
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// MockIntSource serves canned integer PCM for IntSource consumers.
type MockIntSource struct {
	sampleRate int
	channels   int
	bitDepth   int
	data       []int32
	pos        int
}

// NewMockIntSource creates a mock integer source over data.
func NewMockIntSource(sampleRate, channels, bitDepth int, data []int32) *MockIntSource {
	return &MockIntSource{
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		data:       data,
	}
}

func (m *MockIntSource) SampleRate() int { return m.sampleRate }
func (m *MockIntSource) Channels() int   { return m.channels }
func (m *MockIntSource) BitDepth() int   { return m.bitDepth }
func (m *MockIntSource) BufSize() int    { return 4096 }
func (m *MockIntSource) Close() error    { return nil }

func (m *MockIntSource) ReadPCM(dst []int32) (int, error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}

	n := copy(dst, m.data[m.pos:])
	m.pos += n

	if m.pos >= len(m.data) {
		return n, io.EOF
	}

	return n, nil
}
