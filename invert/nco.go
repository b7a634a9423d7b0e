// SPDX-License-Identifier: EPL-2.0

package invert

import "math"

const twoPi = 2 * math.Pi

// NCO is a numerically controlled oscillator producing cos(phase).
type NCO struct {
	phase float64
	step  float64
}

// NewNCO returns an oscillator at frequency Hz for the given sample rate,
// starting at phase zero.
func NewNCO(frequency, sampleRate float64) *NCO {
	return &NCO{step: twoPi * frequency / sampleRate}
}

// Next returns cos of the current phase, then advances by one sample.
// The phase is kept in [0, 2π) by subtracting whole turns, so no fraction
// of a cycle is lost at the wrap.
func (o *NCO) Next() float64 {
	c := math.Cos(o.phase)

	o.phase += o.step
	if o.phase >= twoPi {
		o.phase -= twoPi
	}

	return c
}

// Phase is the phase in radians that the next call to Next will use.
func (o *NCO) Phase() float64 { return o.phase }

// Step is the per-sample phase increment in radians.
func (o *NCO) Step() float64 { return o.step }
