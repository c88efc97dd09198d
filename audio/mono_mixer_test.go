package audio

import (
	"io"
	"testing"
)

func TestMonoMixer_PassThroughMono(t *testing.T) {
	t.Parallel()

	src := newSineSource(44100, 1, 100, 440)
	mixer := NewMonoMixer(src)

	if got := mixer.Channels(); got != 1 {
		t.Errorf("Channels() = %d, want 1", got)
	}

	buf := make([]float32, 100)
	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 100 {
		t.Errorf("ReadSamples() n = %d, want 100", n)
	}
}

func TestMonoMixer_AveragesStereo(t *testing.T) {
	t.Parallel()

	// Left channel 0.5, right channel -0.5: averages to 0.
	src := newMockSource(44100, 2, 50, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.5
		}
		return -0.5
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 50)
	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := 0; i < n; i++ {
		if buf[i] != 0 {
			t.Errorf("ReadSamples()[%d] = %v, want 0", i, buf[i])
		}
	}
}

func TestMonoMixer_AveragesMultiChannel(t *testing.T) {
	t.Parallel()

	// Three channels at 0.3, 0.6, 0.9: averages to 0.6.
	src := newMockSource(44100, 3, 30, func(sample, channel int) float32 {
		return 0.3 * float32(channel+1)
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 30)
	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := 0; i < n; i++ {
		if diff := buf[i] - 0.6; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("ReadSamples()[%d] = %v, want 0.6", i, buf[i])
		}
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newSilentSource(44100, 2, 10))
	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_SampleRatePreserved(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newSilentSource(22050, 2, 10))
	if got := mixer.SampleRate(); got != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", got)
	}
}
