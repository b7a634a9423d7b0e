// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrNotMono is returned when a multi-channel Source is used where
	// a single channel is required.
	ErrNotMono = errors.New("source must be mono")

	// ErrInvalidBlockSize is returned for a non-positive block size.
	ErrInvalidBlockSize = errors.New("block size must be positive")

	// ErrInvalidRate is returned for a non-positive target sample rate.
	ErrInvalidRate = errors.New("sample rate must be positive")
)
