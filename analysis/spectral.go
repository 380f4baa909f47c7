// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ZeroCrossingRate returns the fraction of adjacent sample pairs whose signs
// differ, in [0, 1]. A pure tone at frequency f measures roughly
// 2f/sampleRate; broadband noise pushes the rate much higher.
func ZeroCrossingRate(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}

	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] >= 0) != (samples[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(samples)-1)
}

// SpectralCentroid returns the magnitude-weighted mean frequency of the
// clip's spectrum, in Hz. Higher values mean brighter material. Digital
// silence returns 0.
func SpectralCentroid(samples []float64, sampleRate int) float64 {
	if len(samples) < 2 || sampleRate <= 0 {
		return 0
	}

	fft := fourier.NewFFT(len(samples))
	coeffs := fft.Coefficients(nil, samples)

	binWidth := float64(sampleRate) / float64(len(samples))
	weighted, total := 0.0, 0.0
	for k, c := range coeffs {
		mag := cmplx.Abs(c)
		weighted += mag * float64(k) * binWidth
		total += mag
	}

	if total == 0 {
		return 0
	}
	return weighted / total
}
