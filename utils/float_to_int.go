// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// pcmScale is the full-scale divisor for 16-bit fixed-point samples.
const pcmScale = 32768.0

// Int16ToFloat32 normalizes a 16-bit PCM sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / pcmScale
}

// Float32ToInt16 is the rounding inverse of Int16ToFloat32.
// Values outside the representable range are clamped, so 1.0 maps to 32767.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * pcmScale)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	if math.IsNaN(v) {
		return 0
	}

	return int16(v)
}

// IntToFloat32 normalizes a signed PCM sample of the given bit depth.
// Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	var scale float32
	switch bitDepth {
	case 8:
		scale = 128.0
	case 24:
		scale = 8388608.0
	case 32:
		scale = 2147483648.0
	default:
		scale = pcmScale
	}

	return float32(v) / scale
}
