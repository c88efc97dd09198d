// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding via
// github.com/hajimehoshi/go-mp3.
//
// MP3 is lossy, so there is no raw-PCM batch path for it; the decoder
// returns a float audio.Source that feeds the streaming declick
// pipeline. go-mp3 always decodes to two channels, so wrap the source
// in an audio.MonoMixer before the Declicker:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	dc, err := audio.NewDeclicker(audio.NewMonoMixer(src), 4096)
package mp3
