// SPDX-License-Identifier: EPL-2.0

package reduce

import (
	"math"

	"github.com/idosh/clipwash/audio"
	"github.com/idosh/clipwash/utils"
)

// normalizeTargetDB is the peak ceiling normalization aims for.
const normalizeTargetDB = -1.0

// normalizePeak scales buf in place so its peak amplitude reaches the target
// ceiling. A silent buffer is left untouched. Normalizing an already
// normalized buffer is a gain of 1, so the operation is idempotent.
func normalizePeak(buf *audio.Buffer) {
	peak := 0.0
	for _, samples := range buf.Data {
		for _, v := range samples {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
	}
	if peak == 0 {
		return
	}

	gain := utils.DBToLinear(normalizeTargetDB) / peak
	for _, samples := range buf.Data {
		for i := range samples {
			samples[i] *= gain
		}
	}
}
