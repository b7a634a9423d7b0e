// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 16, 24 or 32 bits with any number of
// channels. Chunks other than fmt and data are skipped.
//
//	file, _ := os.Open("scrambled.wav")
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not a RIFF/WAVE stream
//	}
//
// Samples come out as float32 in [-1.0, 1.0), scaled by the file's bit depth.
// go-audio seeks between chunks, so a reader that cannot seek is buffered in
// memory first.
//
// # Encoding
//
// Writer is a sample sink that produces mono 16-bit PCM:
//
//	w, err := wav.Create("clear.wav", 8000)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	w.Push(0.5)
//
// Samples are buffered and encoded BufferSamples at a time. Close writes the
// remainder and patches the RIFF sizes, so the file is only complete once
// Close returns.
package wav
