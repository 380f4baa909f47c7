// SPDX-License-Identifier: EPL-2.0

package reduce

const (
	// echoAlpha scales the overall subtraction of delayed spectral energy.
	echoAlpha = 0.5

	// echoLagWeight is the per-lag fraction of an earlier frame's magnitude
	// treated as a late reflection of the current one.
	echoLagWeight = 0.1

	// echoMaxLag is the number of STFT frames of reverb tail considered.
	echoMaxLag = 10
)

// dampEcho attenuates delayed self-similar spectral content. For each STFT
// frame it subtracts a decayed fraction of the magnitudes of the preceding
// frames, on the assumption that energy repeating shortly after itself is a
// reflection rather than new signal.
//
// This is a damping heuristic, not deconvolution: it cannot recover the dry
// signal, only push late reflections down.
func dampEcho(samples []float64, t *stft) []float64 {
	frames := t.analyze(samples)
	if len(frames) == 0 {
		return samples
	}

	mags := magnitudes(frames)

	for ti, frame := range frames {
		for k, c := range frame {
			tail := 0.0
			for lag := 1; lag < echoMaxLag && lag <= ti; lag++ {
				tail += echoAlpha * echoLagWeight * mags[ti-lag][k]
			}

			newMag := mags[ti][k] - tail
			if newMag < 0 {
				newMag = 0
			}
			frame[k] = scaleBin(c, mags[ti][k], newMag)
		}
	}

	return t.synthesize(frames, len(samples))
}
