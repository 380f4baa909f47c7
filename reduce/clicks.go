// SPDX-License-Identifier: EPL-2.0

package reduce

import (
	"math"
	"time"
)

const (
	// clickSigma is the outlier threshold on the sample-to-sample difference,
	// in standard deviations of the whole channel's differences.
	clickSigma = 3.0

	// maxClickDuration bounds how long a run can be treated as a click.
	maxClickDuration = 2 * time.Millisecond
)

// suppressClicks removes impulsive discontinuities. A click shows up as a
// sample-to-sample jump far outside the channel's normal slope; the run of
// samples between the entry and exit jumps (bounded by maxClickDuration) is
// replaced with a linear ramp between its untouched neighbors.
func suppressClicks(samples []float64, sampleRate int) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)

	n := len(samples)
	if n < 3 {
		return out
	}

	// Standard deviation of the first differences.
	var sum, sumSq float64
	for i := 1; i < n; i++ {
		d := samples[i] - samples[i-1]
		sum += d
		sumSq += d * d
	}
	count := float64(n - 1)
	mean := sum / count
	variance := sumSq/count - mean*mean
	if variance < 0 {
		variance = 0
	}
	threshold := clickSigma * math.Sqrt(variance)
	if threshold == 0 {
		return out
	}

	maxRun := int(float64(sampleRate) * maxClickDuration.Seconds())
	if maxRun < 1 {
		maxRun = 1
	}

	for i := 1; i < n; i++ {
		if math.Abs(samples[i]-samples[i-1]) <= threshold {
			continue
		}

		// Entry jump found. The click ends at the last outlier difference
		// within the allowed run length.
		last := i
		for j := i + 1; j < n && j-i < maxRun; j++ {
			if math.Abs(samples[j]-samples[j-1]) > threshold {
				last = j
			}
		}

		left := out[i-1]
		rightIdx := last + 1
		right := left
		if rightIdx < n {
			right = samples[rightIdx]
		}

		span := float64(rightIdx - (i - 1))
		for j := i; j <= last; j++ {
			frac := float64(j-(i-1)) / span
			out[j] = left + (right-left)*frac
		}

		i = last + 1
	}

	return out
}
