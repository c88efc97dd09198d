package audio

import (
	"io"
	"math"
)

// mockSource is a test helper that generates audio data for testing.
// It implements the Source interface and can generate various waveforms.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
}

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		generated:    0,
		waveform:     waveform,
	}
}

// newSilentSource creates a mock source that generates silence (all zeros).
func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// newSineSource creates a mock source that generates a sine wave.
func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
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

// mockIntSource serves canned integer PCM for IntSource tests.
type mockIntSource struct {
	sampleRate int
	channels   int
	bitDepth   int
	data       []int32
	pos        int
	readErr    error // returned once all data is served, instead of io.EOF
}

func newMockIntSource(sampleRate, channels, bitDepth int, data []int32) *mockIntSource {
	return &mockIntSource{
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		data:       data,
	}
}

func (m *mockIntSource) SampleRate() int { return m.sampleRate }
func (m *mockIntSource) Channels() int   { return m.channels }
func (m *mockIntSource) BitDepth() int   { return m.bitDepth }
func (m *mockIntSource) BufSize() int    { return 64 }
func (m *mockIntSource) Close() error    { return nil }

func (m *mockIntSource) ReadPCM(dst []int32) (int, error) {
	if m.pos >= len(m.data) {
		if m.readErr != nil {
			return 0, m.readErr
		}
		return 0, io.EOF
	}

	n := copy(dst, m.data[m.pos:])
	m.pos += n

	if m.pos >= len(m.data) && m.readErr == nil {
		return n, io.EOF
	}

	return n, nil
}
