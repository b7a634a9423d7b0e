// SPDX-License-Identifier: EPL-2.0

// Package invert implements the voice-inversion descrambler.
//
// Analog voice scramblers flip the audio spectrum around a fixed carrier
// frequency. Mixing the scrambled signal with a local oscillator at the
// same carrier folds the spectrum back: a component at f moves to
// carrier-f (the wanted difference image) and carrier+f (the unwanted sum
// image). A low-pass filter below the carrier removes the sum image.
//
// # Streaming
//
// An Inverter maps one input sample to one output sample. Its oscillator
// phase and filter delay lines persist across calls, so feeding a stream
// in blocks of any size gives exactly the same output as feeding it in one
// piece:
//
//	inv, err := invert.New(invert.Params{
//	    SampleRate: 8000,
//	    Frequency:  2632,
//	    Filter:     true,
//	})
//	if err != nil {
//	    // Frequency above Nyquist, rate too low, ...
//	}
//	for _, block := range blocks {
//	    inv.ProcessBlock(block)
//	}
//
// # Filtering
//
// With filtering enabled the input is low-passed at the carrier before
// mixing and the mixed signal is low-passed just below the carrier after
// mixing. Both are elliptic cascades (default order 8, 0.1 dB passband
// ripple, 50 dB stopband), steep enough to separate the wanted image
// from the sum image even for carriers near 4 kHz. The filtered
// output carries a gain of 2 to make up for the halving caused by real
// mixing. With filtering disabled the output is the bare product
// x*cos(phase).
//
// Output is never clamped here; fixed-point sinks clamp on conversion.
package invert
