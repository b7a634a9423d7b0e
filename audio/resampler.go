// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design/pass"

	"github.com/ik5/deinvert/utils"
)

const (
	// antiAliasOrder is the Butterworth order applied before downsampling.
	antiAliasOrder = 8
	// antiAliasCutoff is the cutoff as a fraction of the destination rate.
	antiAliasCutoff = 0.45
)

// Resampler streams a mono Source to another sample rate using cubic
// interpolation. When downsampling, the input is low-passed below the
// destination Nyquist frequency first.
type Resampler struct {
	src     Source
	dstRate int
	step    float64 // source samples per output sample

	// hist[1] sits at the integer read position; output is interpolated
	// between hist[1] and hist[2] at fraction pos.
	hist   [4]float32
	pad    int // trailing copies of the last sample in hist[1:]
	primed bool
	done   bool
	pos    float64

	srcBuf  []float32
	srcN    int
	srcPos  int
	srcDone bool

	aa *biquad.Chain
}

// NewResampler converts src to dstRate. src must be mono.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: got %d channels", ErrNotMono, src.Channels())
	}

	srcRate := src.SampleRate()
	r := &Resampler{
		src:     src,
		dstRate: dstRate,
		step:    float64(srcRate) / float64(dstRate),
		srcBuf:  make([]float32, 4096),
	}

	if dstRate < srcRate {
		coeffs := pass.ButterworthLP(antiAliasCutoff*float64(dstRate), antiAliasOrder, float64(srcRate))
		r.aa = biquad.NewChain(coeffs)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return 1 }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// next returns the following source sample, or ok=false once the source
// is exhausted.
func (r *Resampler) next() (float32, bool, error) {
	for empty := 0; r.srcPos >= r.srcN; empty++ {
		if r.srcDone {
			return 0, false, nil
		}
		if empty >= maxEmptyReads {
			return 0, false, io.ErrNoProgress
		}

		n, err := r.src.ReadSamples(r.srcBuf)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return 0, false, fmt.Errorf("%w", err)
			}
			r.srcDone = true
		}

		if r.aa != nil {
			for i, v := range r.srcBuf[:n] {
				r.srcBuf[i] = float32(r.aa.ProcessSample(float64(v)))
			}
		}
		r.srcN, r.srcPos = n, 0
	}

	v := r.srcBuf[r.srcPos]
	r.srcPos++

	return v, true, nil
}

// push shifts one sample into the history, repeating the last sample
// once the source runs dry.
func (r *Resampler) push() error {
	v, ok, err := r.next()
	if err != nil {
		return err
	}

	copy(r.hist[:3], r.hist[1:])
	if ok {
		r.hist[3] = v
	} else {
		r.hist[3] = r.hist[2]
		r.pad++
	}

	return nil
}

func (r *Resampler) prime() error {
	first, ok, err := r.next()
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return nil
	}

	r.hist = [4]float32{first, first, first, first}
	r.pad = 2
	for i := 2; i < 4; i++ {
		v, ok, err := r.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		for j := i; j < 4; j++ {
			r.hist[j] = v
		}
		r.pad--
	}
	r.primed = true

	return nil
}

// ReadSamples produces up to len(dst) samples at the destination rate.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if !r.primed && !r.done {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) && !r.done {
		for r.pos >= 1 {
			r.pos--
			if err := r.push(); err != nil {
				return written, err
			}
		}
		if r.pad >= 3 {
			r.done = true
			break
		}

		dst[written] = utils.CubicInterpolate(r.hist[0], r.hist[1], r.hist[2], r.hist[3], float32(r.pos))
		written++
		r.pos += r.step
	}

	if r.done {
		return written, io.EOF
	}

	return written, nil
}
