// SPDX-License-Identifier: EPL-2.0

// Package declick removes single-sample pop artifacts from PCM audio.
//
// A pop is an isolated amplitude spike, typically a digitization or
// storage artifact. The filter slides a five-sample window over the
// signal and compares each center sample against its four neighbors:
// with min and max taken over the neighbors, a center outside
//
//	avg ± 2*(max-min)
//
// is replaced by avg. The band scales with the neighbor spread, so
// quiet passages reject small clicks while genuine transients pass
// through untouched.
//
// # Domains
//
// The same algorithm serves two sample domains. Lossless file data is
// cleaned as int32 PCM; real-time audio is cleaned as float32. A
// Domain value carries the per-domain arithmetic (sentinel extremes,
// widening, saturating narrowing); Int32 and Float32 are the two
// instantiations:
//
//	cleaned := declick.Clean(declick.Int32, samples)
//
// # Batch and streaming
//
// Clean is the allocating whole-signal pass. Streamer is the in-place,
// allocation-free pass for block-driven processing:
//
//	s := declick.NewStreamer(declick.Float32, maxBlock)
//	// per audio block, on the processing thread:
//	s.Process(block)
//
// Both are built on the same window evaluator and padding rule, so a
// single Process call over an entire signal matches Clean exactly.
//
// # Boundary handling
//
// Sequences are padded with two sentinel samples (the domain maximum
// then minimum) on each side. A window containing a sentinel spans
// nearly the whole domain, which disables outlier detection there:
// the first and last two real samples are never replaced just because
// a true neighbor is missing.
//
// Each Process call pads its block independently. A sample adjacent
// to a block boundary is therefore windowed against sentinels rather
// than its true neighbor in the next block, and detection near
// boundaries can depend on the host's block size. This mirrors the
// per-call contract of Clean and keeps the Streamer stateless between
// calls.
package declick
