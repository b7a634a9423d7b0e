// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/spectrum"
)

// Sine returns n samples of amplitude*sin(2π·freq·t) at rate.
func Sine(freq, rate, amplitude float64, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(amplitude * math.Sin(2*math.Pi*freq*float64(i)/rate))
	}

	return out
}

// ToneMagnitude is the Goertzel magnitude of samples at freq Hz,
// normalized so a full-length sine of amplitude A reads as A.
func ToneMagnitude(samples []float32, freq, rate float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	g, err := spectrum.NewGoertzel(freq, rate)
	if err != nil {
		return 0
	}
	for _, v := range samples {
		g.ProcessSample(float64(v))
	}

	return 2 * g.Magnitude() / float64(len(samples))
}

// DominantFrequency scans [lo, hi] in step Hz and returns the frequency
// with the strongest Goertzel response.
func DominantFrequency(samples []float32, rate, lo, hi, step float64) float64 {
	best, bestMag := lo, -1.0
	for f := lo; f <= hi; f += step {
		if m := ToneMagnitude(samples, f, rate); m > bestMag {
			best, bestMag = f, m
		}
	}

	return best
}
