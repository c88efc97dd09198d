// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding on top of
// github.com/go-audio/wav.
//
// WAV is both a lossless input format and the output format of the
// batch declick converter, so this package covers both directions.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.IntSource: raw integer PCM at the
// file's native bit depth, plus sample rate, channel count, and bit
// depth metadata. Non-PCM WAV files are rejected with
// ErrOnlyPCMSupported.
//
// # Encoding
//
// WritePCM writes mono integer PCM at any sample rate and bit depth,
// preserving the input file's metadata on the way out:
//
//	err := wav.WritePCM(out, 44100, 24, cleaned)
//
// WriteWAV16 is the 16-bit convenience used by the streaming float
// path:
//
//	err := wav.WriteWAV16(out, 44100, pcm16)
//
// Both writers need an io.WriteSeeker because the RIFF headers are
// patched with final sizes on Close.
package wav
