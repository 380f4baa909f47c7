// SPDX-License-Identifier: EPL-2.0

package reduce

import "sort"

// spectralGate attenuates stationary noise with spectral subtraction. The
// noise magnitude profile is the per-bin mean over the lowest-energy
// noisePercentile of STFT frames, mirroring the analyzer's noise floor
// estimate. Each bin then loses a strength-scaled fraction of that profile,
// floored at zero so no bin gains energy.
//
// The strength knob maps linearly to the subtracted magnitude: strength 0
// leaves the spectrum untouched, strength 1 subtracts the full profile.
// Stronger settings remove more noise at the cost of audible artifacts.
func spectralGate(samples []float64, strength, noisePercentile float64, t *stft) []float64 {
	frames := t.analyze(samples)
	if len(frames) == 0 {
		return samples
	}

	mags := magnitudes(frames)
	bins := len(mags[0])

	// Rank frames by total energy to find the quietest ones.
	energies := make([]float64, len(mags))
	for ti, mag := range mags {
		for _, m := range mag {
			energies[ti] += m * m
		}
	}
	order := make([]int, len(energies))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return energies[order[a]] < energies[order[b]] })

	quiet := int(float64(len(order))*noisePercentile + 0.5)
	if quiet < 1 {
		quiet = 1
	}

	profile := make([]float64, bins)
	for _, ti := range order[:quiet] {
		for k, m := range mags[ti] {
			profile[k] += m
		}
	}
	for k := range profile {
		profile[k] /= float64(quiet)
	}

	for ti, frame := range frames {
		for k, c := range frame {
			oldMag := mags[ti][k]
			newMag := oldMag - strength*profile[k]
			if newMag < 0 {
				newMag = 0
			}
			frame[k] = scaleBin(c, oldMag, newMag)
		}
	}

	return t.synthesize(frames, len(samples))
}
