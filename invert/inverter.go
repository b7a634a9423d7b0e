// SPDX-License-Identifier: EPL-2.0

package invert

import (
	"fmt"
	"math"
)

const (
	// MinSampleRate is the lowest accepted sample rate in Hz.
	MinSampleRate = 6000.0

	// DefaultFilterOrder is used when Params.FilterOrder is zero.
	DefaultFilterOrder = 8

	// MaxFilterOrder bounds Params.FilterOrder.
	MaxFilterOrder = 12

	// postFilterGuard is the widest gap in Hz between the carrier and the
	// passband edge of the filter applied after mixing.
	postFilterGuard = 150.0
)

// Params are fixed for the lifetime of an Inverter.
type Params struct {
	SampleRate float64 // Hz
	Frequency  float64 // carrier, Hz
	Filter     bool
	// FilterOrder of each elliptic cascade; 0 selects DefaultFilterOrder.
	FilterOrder int
}

// Validate reports the first parameter that would make inversion meaningless.
func (p Params) Validate() error {
	if math.IsNaN(p.SampleRate) || math.IsInf(p.SampleRate, 0) || p.SampleRate < MinSampleRate {
		return fmt.Errorf("%w: got %v", ErrInvalidSampleRate, p.SampleRate)
	}
	if math.IsNaN(p.Frequency) || math.IsInf(p.Frequency, 0) || p.Frequency <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidFrequency, p.Frequency)
	}
	if p.Frequency >= p.SampleRate/2 {
		return fmt.Errorf("%w: %v Hz at %v Hz", ErrAboveNyquist, p.Frequency, p.SampleRate)
	}
	if p.FilterOrder < 0 || p.FilterOrder > MaxFilterOrder {
		return fmt.Errorf("%w: got %d, want 1-%d", ErrInvalidFilterOrder, p.FilterOrder, MaxFilterOrder)
	}

	return nil
}

// PostFilterCutoff is the passband edge of the filter applied after mixing.
func (p Params) PostFilterCutoff() float64 {
	return p.Frequency - min(postFilterGuard, p.Frequency/4)
}

// Inverter descrambles one sample at a time. It is not safe for
// concurrent use; each stream needs its own Inverter.
type Inverter struct {
	params Params
	nco    *NCO
	pre    *Lowpass
	post   *Lowpass
}

// New validates p and returns an Inverter at phase zero with empty filters.
func New(p Params) (*Inverter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.FilterOrder == 0 {
		p.FilterOrder = DefaultFilterOrder
	}

	inv := &Inverter{
		params: p,
		nco:    NewNCO(p.Frequency, p.SampleRate),
	}
	if p.Filter {
		var err error
		if inv.pre, err = NewLowpass(p.Frequency, p.FilterOrder, p.SampleRate); err != nil {
			return nil, err
		}
		if inv.post, err = NewLowpass(p.PostFilterCutoff(), p.FilterOrder, p.SampleRate); err != nil {
			return nil, err
		}
	}

	return inv, nil
}

// Params returns the parameters the Inverter was built with.
func (inv *Inverter) Params() Params { return inv.params }

// Phase is the oscillator phase the next sample will be mixed with.
func (inv *Inverter) Phase() float64 { return inv.nco.Phase() }

// Process descrambles one sample.
func (inv *Inverter) Process(x float32) float32 {
	c := inv.nco.Next()
	if !inv.params.Filter {
		return float32(float64(x) * c)
	}

	m := inv.pre.Process(float64(x)) * c
	return float32(2 * inv.post.Process(m))
}

// ProcessBlock descrambles buf in place.
func (inv *Inverter) ProcessBlock(buf []float32) {
	for i, x := range buf {
		buf[i] = inv.Process(x)
	}
}
