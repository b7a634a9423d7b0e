// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/deinvert/utils"
)

// BufferSamples is how many samples Writer batches per write.
const BufferSamples = 4096

// Writer is a sample sink that emits little-endian 16-bit PCM.
// Once a write fails every later Push and Close returns that error.
type Writer struct {
	w      io.Writer
	buf    []byte
	n      int
	err    error
	closed bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   w,
		buf: make([]byte, BufferSamples*2),
	}
}

func (w *Writer) Push(sample float32) error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrWriterClosed
	}

	binary.LittleEndian.PutUint16(w.buf[w.n:], uint16(utils.Float32ToInt16(sample)))
	w.n += 2
	if w.n == len(w.buf) {
		return w.flush()
	}

	return nil
}

func (w *Writer) flush() error {
	if w.n == 0 {
		return nil
	}

	if _, err := w.w.Write(w.buf[:w.n]); err != nil {
		w.err = fmt.Errorf("write raw PCM: %w", err)
		return w.err
	}
	w.n = 0

	return nil
}

// Close writes any buffered samples. The underlying writer is left open.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true

	if w.err != nil {
		return w.err
	}

	return w.flush()
}
