// SPDX-License-Identifier: EPL-2.0

package deinvert

import "errors"

var (
	// ErrSourceFailed wraps a read error from the sample source.
	ErrSourceFailed = errors.New("sample source failed")

	// ErrSinkFailed wraps a push or flush error from the sample sink.
	ErrSinkFailed = errors.New("sample sink failed")

	// ErrIncompletePipeline is returned by Run when a stage is missing.
	ErrIncompletePipeline = errors.New("pipeline needs a source, an inverter and a sink")
)
