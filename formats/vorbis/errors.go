// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbis indicates the stream is not Ogg Vorbis.
var ErrNotVorbis = errors.New("not an Ogg Vorbis stream")
