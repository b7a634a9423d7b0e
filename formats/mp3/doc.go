// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
//	file, _ := os.Open("scrambled.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, mp3.ErrNotMP3) {
//	    // no MPEG audio frame found
//	}
//
// go-mp3 always yields 16-bit stereo at the file's sample rate, so the
// returned source reports two channels even for mono recordings. Wrap it in
// an audio.MonoMixer before descrambling.
package mp3
