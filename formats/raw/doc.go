// SPDX-License-Identifier: EPL-2.0

// Package raw reads and writes headerless 16-bit PCM streams.
//
// Samples are signed, little-endian and mono. A raw stream carries no rate,
// so the Decoder is told what rate to report:
//
//	src, _ := raw.Decoder{SampleRate: 8000}.Decode(os.Stdin)
//
// Writer batches samples and writes them in blocks of BufferSamples:
//
//	w := raw.NewWriter(os.Stdout)
//	defer w.Close()
//	w.Push(0.5)
package raw
