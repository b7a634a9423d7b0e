// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads a Source may
// return before BlockReader gives up with io.ErrNoProgress.
const maxEmptyReads = 100

// BlockReader adapts a mono Source to the SampleSource block contract.
type BlockReader struct {
	src     Source
	buf     []float32
	srcDone bool
	atEnd   bool
}

// NewBlockReader reads blocks of at most size samples from src.
// src must be mono; wrap multi-channel sources in a MonoMixer first.
func NewBlockReader(src Source, size int) (*BlockReader, error) {
	if size <= 0 {
		return nil, ErrInvalidBlockSize
	}
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: got %d channels", ErrNotMono, src.Channels())
	}

	return &BlockReader{
		src: src,
		buf: make([]float32, size),
	}, nil
}

func (b *BlockReader) SampleRate() float64 { return float64(b.src.SampleRate()) }
func (b *BlockReader) AtEnd() bool         { return b.atEnd }

// Close closes the underlying Source.
func (b *BlockReader) Close() error {
	err := b.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (b *BlockReader) ReadBlock() ([]float32, error) {
	if b.atEnd || b.srcDone {
		b.atEnd = true
		return b.buf[:0], nil
	}

	for range maxEmptyReads {
		n, err := b.src.ReadSamples(b.buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read samples: %w", err)
		}
		if err != nil {
			// The final partial block is still delivered; the empty
			// block that marks the end comes on the next call.
			b.srcDone = true
			if n == 0 {
				b.atEnd = true
			}
			return b.buf[:n], nil
		}
		if n > 0 {
			return b.buf[:n], nil
		}
	}

	return nil, io.ErrNoProgress
}
