// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
//	file, _ := os.Open("scrambled.aiff")
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not a FORM/AIFF stream
//	}
//
// Integer PCM of 8, 16, 24 or 32 bits is accepted and scaled into
// [-1.0, 1.0) by bit depth. Readers that cannot seek are buffered in memory.
package aiff
