// SPDX-License-Identifier: EPL-2.0

package raw

import "errors"

var (
	ErrInvalidSampleRate = errors.New("raw PCM needs a positive sample rate")
	ErrWriterClosed      = errors.New("raw writer is closed")
)
