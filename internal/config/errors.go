// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrInvalidSampleRate  = errors.New("invalid sample_rate")
	ErrInvalidFrequency   = errors.New("invalid frequency")
	ErrInvalidPreset      = errors.New("invalid preset")
	ErrInvalidFilterOrder = errors.New("invalid filter_order")
	ErrInvalidResample    = errors.New("invalid resample rate")
	ErrInvalidBlockSize   = errors.New("invalid block_size")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidOutput      = errors.New("invalid output")
	ErrInvalidLogging     = errors.New("invalid logging")
)
