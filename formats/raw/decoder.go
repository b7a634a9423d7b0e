// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/deinvert/audio"
	"github.com/ik5/deinvert/utils"
)

type rawSource struct {
	r          io.Reader
	sampleRate int
	buf        []byte
	done       bool
}

func (s *rawSource) SampleRate() int { return s.sampleRate }
func (s *rawSource) Channels() int   { return 1 }
func (s *rawSource) BufSize() int    { return len(s.buf) / 2 }

// Close closes the underlying reader when it is an io.Closer.
func (s *rawSource) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

func (s *rawSource) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(s.buf) < len(dst)*2 {
		s.buf = make([]byte, len(dst)*2)
	}

	n, err := io.ReadFull(s.r, s.buf[:len(dst)*2])
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// A trailing odd byte is not a sample and is dropped.
		s.done = true
	case err != nil:
		return 0, fmt.Errorf("read raw PCM: %w", err)
	}

	samples := n / 2
	for i := range samples {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}

	if s.done {
		return samples, io.EOF
	}

	return samples, nil
}

// Decoder reads headerless little-endian 16-bit mono PCM at SampleRate.
type Decoder struct {
	SampleRate int
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if d.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, d.SampleRate)
	}

	return &rawSource{
		r:          r,
		sampleRate: d.SampleRate,
		buf:        make([]byte, 8192),
	}, nil
}
