// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio decoding via github.com/mewkiz/flac.
//
// FLAC is the primary lossless input of the batch declick converter:
// pops introduced by a bad rip or transfer survive the lossless
// encoding exactly, so the filter works on the decoded raw integer
// samples. The decoder returns an audio.IntSource carrying the
// stream's sample rate, channel count and bit depth:
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//	pcm, err := audio.CollectPCM(source) // mono enforced here
//
// Encoding FLAC is out of scope; the batch converter writes cleaned
// samples to WAV with the original metadata.
package flac
