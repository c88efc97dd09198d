package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// fakeOggStream hands out interleaved float32 frames the way
// oggvorbis.Reader does, counting reads in frames.
type fakeOggStream struct {
	rate     int
	channels int
	frames   []float32 // interleaved, len is a multiple of channels
	pos      int       // in frames
	readErr  error
}

func (f *fakeOggStream) SampleRate() int { return f.rate }
func (f *fakeOggStream) Channels() int   { return f.channels }

func (f *fakeOggStream) Read(dst []float32) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	total := len(f.frames) / f.channels
	if f.pos >= total {
		return 0, io.EOF
	}

	n := len(dst) / f.channels
	if rest := total - f.pos; n > rest {
		n = rest
	}
	copy(dst, f.frames[f.pos*f.channels:(f.pos+n)*f.channels])
	f.pos += n

	if f.pos >= total {
		return n, io.EOF
	}
	return n, nil
}

func newFakeSource(rate, channels int, frames []float32) (*source, *fakeOggStream) {
	f := &fakeOggStream{rate: rate, channels: channels, frames: frames}
	return &source{
		dec:        f,
		sampleRate: rate,
		channels:   channels,
		frameBuf:   make([]float32, 4096),
	}, f
}

func TestDecoder_RejectsNonOgg(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("not an ogg page")},
		{"empty", nil},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tc.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src, _ := newFakeSource(48000, 2, make([]float32, 32))

	if got := src.SampleRate(); got != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", got)
	}
	if got := src.Channels(); got != 2 {
		t.Errorf("Channels() = %d, want 2", got)
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_KeepsInterleavedOrder(t *testing.T) {
	t.Parallel()

	frames := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src, _ := newFakeSource(44100, 2, frames)

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Fatalf("ReadSamples() n = %d, want 6", n)
	}
	for i, want := range frames {
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSource_ReadAcrossCalls(t *testing.T) {
	t.Parallel()

	frames := make([]float32, 20) // 10 stereo frames
	for i := range frames {
		frames[i] = float32(i) / 20
	}
	src, _ := newFakeSource(44100, 2, frames)

	dst := make([]float32, 8) // 4 frames per call
	var total int
	for {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			if n != 4 {
				t.Errorf("final ReadSamples() n = %d, want 4", n)
			}
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n != 8 {
			t.Errorf("ReadSamples() n = %d, want 8", n)
		}
	}
	if total != len(frames) {
		t.Errorf("total samples = %d, want %d", total, len(frames))
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src, _ := newFakeSource(44100, 2, make([]float32, 8))

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_GrowsFrameBuffer(t *testing.T) {
	t.Parallel()

	src, _ := newFakeSource(44100, 2, make([]float32, 2048))
	src.frameBuf = make([]float32, 8)

	dst := make([]float32, 2048)
	if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if cap(src.frameBuf) < len(dst) {
		t.Errorf("frameBuf capacity = %d, want >= %d", cap(src.frameBuf), len(dst))
	}
}

func TestSource_PropagatesReadError(t *testing.T) {
	t.Parallel()

	src, fake := newFakeSource(44100, 2, make([]float32, 8))
	fake.readErr = io.ErrUnexpectedEOF

	if _, err := src.ReadSamples(make([]float32, 4)); err != io.ErrUnexpectedEOF {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	frames := make([]float32, 44100*2)
	for i := range frames {
		frames[i] = float32(i%2000) / 2000
	}
	src, fake := newFakeSource(44100, 2, frames)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fake.pos = 0
		_, _ = src.ReadSamples(dst)
	}
}
