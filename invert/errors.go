// SPDX-License-Identifier: EPL-2.0

package invert

import "errors"

var (
	// ErrInvalidSampleRate indicates a non-finite sample rate or one below MinSampleRate.
	ErrInvalidSampleRate = errors.New("sample rate must be 6000 Hz or higher")

	// ErrInvalidFrequency indicates a non-finite or non-positive carrier frequency.
	ErrInvalidFrequency = errors.New("inversion frequency must be positive")

	// ErrAboveNyquist indicates a carrier at or above half the sample rate.
	ErrAboveNyquist = errors.New("inversion frequency must be below half the sample rate")

	// ErrInvalidFilterOrder indicates a filter order outside [1, MaxFilterOrder].
	ErrInvalidFilterOrder = errors.New("filter order out of range")

	// ErrFilterDesign indicates the low-pass cascade could not be designed.
	ErrFilterDesign = errors.New("cannot design low-pass filter")
)
