// SPDX-License-Identifier: EPL-2.0

package invert

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design/pass"
)

const (
	// passbandRippleDB is the allowed passband ripple of each cascade.
	passbandRippleDB = 0.1
	// stopbandDB is the minimum stopband attenuation of each cascade.
	stopbandDB = 50.0
)

// Lowpass is an elliptic low-pass cascade whose delay lines persist
// between samples.
type Lowpass struct {
	chain *biquad.Chain
	edge  float64
}

// NewLowpass designs an order-n elliptic low-pass with its passband edge
// at edge Hz. edge must lie strictly between 0 and sampleRate/2.
func NewLowpass(edge float64, order int, sampleRate float64) (*Lowpass, error) {
	coeffs := pass.EllipticLP(edge, order, passbandRippleDB, stopbandDB, sampleRate)
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%w: order %d at %v Hz, rate %v Hz", ErrFilterDesign, order, edge, sampleRate)
	}

	return &Lowpass{
		chain: biquad.NewChain(coeffs),
		edge:  edge,
	}, nil
}

// Process filters one sample, advancing the delay lines.
func (l *Lowpass) Process(x float64) float64 { return l.chain.ProcessSample(x) }

// Edge is the passband edge in Hz.
func (l *Lowpass) Edge() float64 { return l.edge }

// MagnitudeDB is the steady-state response at freq Hz.
func (l *Lowpass) MagnitudeDB(freq, sampleRate float64) float64 {
	return l.chain.MagnitudeDB(freq, sampleRate)
}
