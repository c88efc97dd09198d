// SPDX-License-Identifier: EPL-2.0

// Package audio provides the interfaces and stream processors that
// connect format decoders to the declick core.
//
// # Two sample domains
//
// Audio flows through the package in one of two forms:
//
//   - Source delivers interleaved float32 samples in [-1.0, 1.0].
//     This is the real-time/streaming domain; lossy decoders (MP3,
//     Vorbis) and host-driven processing use it.
//   - IntSource delivers interleaved integer PCM at the file's native
//     bit depth. This is the lossless batch domain; FLAC, WAV and
//     AIFF decoders use it so cleaned samples can be re-encoded
//     without renormalization.
//
// # Streaming pipeline
//
// Float sources chain the way decoders chain into processors:
//
//	mono := audio.NewMonoMixer(src)          // if src is not mono
//	dc, err := audio.NewDeclicker(mono, 4096)
//	n, err := dc.ReadSamples(buf)            // cleaned samples
//
// The Declicker enforces the single-channel policy at construction
// (ErrNotMono); the declick core itself never inspects channel
// counts. An optional peak meter can be attached with SetMeter for
// display consumers.
//
// # Batch pipeline
//
// Integer sources are drained whole and cleaned in one pass:
//
//	pcm, err := audio.CollectPCM(src)        // rejects multi-channel
//	cleaned := declick.Clean(declick.Int32, pcm)
//
// # Format registry
//
// The registry maps format keys to decoders, integer and float kept
// apart:
//
//	reg := audio.NewRegistry()
//	reg.RegisterInt("flac", flac.Decoder{})
//	reg.Register("mp3", mp3.Decoder{})
//
// # Error handling
//
// Stream reads return io.EOF when no more data is available. Sentinel
// errors (ErrNotMono, ErrInvalidDstSize) mark caller contract
// problems at this boundary; decoder failures pass through wrapped.
package audio
