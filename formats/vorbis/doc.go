// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("scrambled.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
//	if errors.Is(err, vorbis.ErrNotVorbis) {
//	    // not an Ogg Vorbis stream
//	}
//
// Samples are already float32 in [-1.0, 1.0] and are passed through
// unscaled. ReadSamples only returns whole frames, so a destination shorter
// than one frame yields nothing.
package vorbis
