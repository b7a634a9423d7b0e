// SPDX-License-Identifier: EPL-2.0

// Package deinvert descrambles voice-inverted audio.
//
// Analog voice scramblers flip the audio spectrum around a fixed carrier
// frequency. Mixing the scrambled signal with a local oscillator at the same
// carrier and low-passing the result flips it back. The algorithm itself lives
// in the invert subpackage; this package wires it between a sample source and
// a sample sink.
//
// # Supported Formats
//
// Input can be read from:
//   - raw little-endian 16-bit PCM via formats/raw
//   - WAV (16, 24 and 32-bit PCM) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Output is written as raw 16-bit PCM (formats/raw) or as a 16-bit mono WAV
// file (formats/wav).
//
// # Quick Start
//
// The simplest way to descramble a file is DescrambleToMono16:
//
//	file, _ := os.Open("scrambled.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	// Selectone ST-20B preset 1
//	samples, rate, _ := deinvert.DescrambleToMono16(src, 2632, true, 4096)
//
// # Streaming
//
// For long recordings, stream from a source to a sink:
//
//	src, _ := raw.Decoder{SampleRate: 8000}.Decode(os.Stdin)
//	br, _ := audio.NewBlockReader(src, 4096)
//	sink := raw.NewWriter(os.Stdout)
//
//	stats, err := deinvert.Descramble(br, sink, deinvert.Options{
//	    Frequency: 2632,
//	    Filter:    true,
//	})
//
// Oscillator phase and filter state persist across blocks, so the output does
// not depend on how the input happens to be split.
//
// See the individual subpackages for more detailed documentation.
package deinvert
