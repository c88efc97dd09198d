// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding via
// github.com/jfreymuth/oggvorbis.
//
// Vorbis is lossy, so the decoder returns a float audio.Source for
// the streaming declick pipeline rather than a raw-PCM IntSource.
// Stereo files need an audio.MonoMixer in front of the Declicker.
package vorbis
