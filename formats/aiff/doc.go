// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding via
// github.com/go-audio/aiff.
//
// AIFF is a lossless PCM container, so the decoder returns an
// audio.IntSource with the file's raw integer samples and native bit
// depth, suitable for the batch declick path:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	pcm, err := audio.CollectPCM(source)
package aiff
