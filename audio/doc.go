// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming building blocks the descrambler is
// wired from.
//
// # Sources
//
// Source is what a decoder returns: interleaved float32 samples in
// [-1.0, 1.0] read with ReadSamples, ending with io.EOF.
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// MonoMixer averages channels into one. Resampler converts a mono Source to
// another rate with cubic interpolation, low-passing first when it
// downsamples.
//
// # Blocks and sinks
//
// The descrambler consumes a SampleSource: blocks of mono samples, an empty
// block once the input is exhausted, and AtEnd true from then on.
// BlockReader adapts any mono Source to that contract:
//
//	br, err := audio.NewBlockReader(audio.NewMonoMixer(src), 4096)
//	for !br.AtEnd() {
//	    block, err := br.ReadBlock()
//	    ...
//	}
//
// Output goes to a SampleSink, one sample per Push. Sinks buffer
// internally and flush on Close.
//
// # Format Registry
//
// Registry maps format keys to decoders, case-insensitively, and can pick a
// decoder from a file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForFile("recording.WAV")
package audio
