// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/deinvert/utils"
)

const (
	// BufferSamples is how many samples Writer hands to the encoder at once.
	BufferSamples = 4096

	outputBitDepth = 16
)

// Writer is a sample sink producing a mono 16-bit PCM WAV file.
// The RIFF sizes are patched in by Close, so the target must be seekable.
type Writer struct {
	closer io.Closer
	enc    *wav.Encoder
	buf    *goaudio.IntBuffer
	n      int
	total  int
	err    error
	closed bool
}

// NewWriter encodes into ws at sampleRate. Close does not close ws.
func NewWriter(ws io.WriteSeeker, sampleRate int) (*Writer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sampleRate)
	}

	return &Writer{
		enc: wav.NewEncoder(ws, sampleRate, outputBitDepth, 1, wavFormatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			Data:           make([]int, BufferSamples),
			SourceBitDepth: outputBitDepth,
		},
	}, nil
}

// Create truncates or creates path and returns a Writer that closes the
// file when it is closed.
func Create(path string, sampleRate int) (*Writer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	w, err := NewWriter(f, sampleRate)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w.closer = f

	return w, nil
}

// Samples is the number of samples accepted so far.
func (w *Writer) Samples() int { return w.total }

func (w *Writer) Push(sample float32) error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrWriterClosed
	}

	w.buf.Data[w.n] = int(utils.Float32ToInt16(sample))
	w.n++
	w.total++
	if w.n == len(w.buf.Data) {
		return w.flush()
	}

	return nil
}

func (w *Writer) flush() error {
	full := w.buf.Data
	w.buf.Data = full[:w.n]
	err := w.enc.Write(w.buf)
	w.buf.Data = full
	w.n = 0

	if err != nil {
		w.err = fmt.Errorf("encode WAV: %w", err)
		return w.err
	}

	return nil
}

// Close flushes buffered samples, finalizes the header and closes the
// file opened by Create. A file with no samples still gets a valid header.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true

	err := w.err
	if err == nil {
		// The encoder only emits the header on its first write.
		err = w.flush()
	}
	if err == nil {
		if cerr := w.enc.Close(); cerr != nil {
			err = fmt.Errorf("finalize WAV: %w", cerr)
		}
	}
	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close WAV file: %w", cerr)
		}
	}
	w.err = err

	return err
}
