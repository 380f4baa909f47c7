// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantizes a [-1, 1] sample to a signed 16-bit value.
// Out-of-range inputs are clamped first. 32767 scales both polarities so the
// quantizer stays symmetric.
func Float32ToInt16(x float32) int16 {
	return int16(math.Round(Clamp(float64(x), -1, 1) * 32767.0))
}
