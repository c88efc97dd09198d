// SPDX-License-Identifier: EPL-2.0

// Package depop removes single-sample "pop" artifacts from audio.
//
// A pop is an isolated amplitude spike left behind by a bad rip,
// transfer, or digitization. The filter compares each sample against
// its four nearest neighbors and replaces it with their average when
// it falls outside an adaptive band; everything else passes through
// untouched. The algorithm itself lives in the declick subpackage.
//
// # Batch cleaning
//
// Lossless files are cleaned in their native integer PCM domain, with
// sample rate and bit depth carried through unmodified:
//
//	src, _ := flac.Decoder{}.Decode(inFile)
//	err := depop.CleanToWAV(outFile, src)
//
// CleanPCM returns the cleaned samples instead of encoding them, for
// callers with their own output stage.
//
// # Streaming cleaning
//
// Lossy inputs and real-time paths work in float32. The convenience
// function streams a whole source to 16-bit WAV:
//
//	src, _ := mp3.Decoder{}.Decode(inFile)
//	err := depop.CleanToWAV16(outFile, src, 4096)
//
// Hosts driving audio block-by-block use effect.Processor directly:
// it cleans blocks in place without allocating and keeps a lock-free
// peak meter (meter.Peak) current for an attached display.
//
// # Supported Formats
//
// The package decodes the following audio formats:
//   - FLAC via formats/flac (lossless, batch path)
//   - WAV (PCM) via formats/wav (lossless, batch path; also output)
//   - AIFF (PCM) via formats/aiff (lossless, batch path)
//   - MP3 via formats/mp3 (lossy, streaming path)
//   - Ogg Vorbis via formats/vorbis (lossy, streaming path)
//
// # Channel policy
//
// The filter consumes exactly one channel. Multi-channel lossless
// sources are rejected (audio.ErrNotMono); the streaming path mixes
// multi-channel sources down with audio.MonoMixer before cleaning.
package depop
