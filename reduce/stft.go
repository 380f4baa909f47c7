// SPDX-License-Identifier: EPL-2.0

package reduce

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Short-time transform parameters shared by the spectral stages.
const (
	stftSize = 2048
	stftHop  = 512
)

// stft performs windowed forward/inverse short-time Fourier transforms with
// overlap-add reconstruction. The same Hann window is used for analysis and
// synthesis; reconstruction divides by the accumulated window energy, so a
// round trip without spectral edits returns the input.
type stft struct {
	size, hop int
	fft       *fourier.FFT
	window    []float64
}

func newSTFT(size, hop int) *stft {
	window := make([]float64, size)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size)))
	}
	return &stft{
		size:   size,
		hop:    hop,
		fft:    fourier.NewFFT(size),
		window: window,
	}
}

// analyze returns the short-time spectrum of x: one frame of size/2+1
// complex bins per hop. The tail is zero-padded.
func (s *stft) analyze(x []float64) [][]complex128 {
	if len(x) == 0 {
		return nil
	}

	numFrames := 1 + (len(x)-1)/s.hop
	frames := make([][]complex128, numFrames)
	buf := make([]float64, s.size)

	for t := 0; t < numFrames; t++ {
		start := t * s.hop
		for i := range buf {
			if start+i < len(x) {
				buf[i] = x[start+i] * s.window[i]
			} else {
				buf[i] = 0
			}
		}
		frames[t] = s.fft.Coefficients(nil, buf)
	}
	return frames
}

// synthesize reconstructs n samples from (possibly edited) frames by inverse
// transform and overlap-add.
func (s *stft) synthesize(frames [][]complex128, n int) []float64 {
	out := make([]float64, n+s.size)
	windowEnergy := make([]float64, n+s.size)
	seq := make([]float64, s.size)

	for t, frame := range frames {
		seq = s.fft.Sequence(seq, frame)
		start := t * s.hop
		for i := 0; i < s.size; i++ {
			// fourier.FFT round trips scaled by the transform length
			sample := seq[i] / float64(s.size)
			out[start+i] += sample * s.window[i]
			windowEnergy[start+i] += s.window[i] * s.window[i]
		}
	}

	for i := 0; i < n; i++ {
		if windowEnergy[i] > 1e-12 {
			out[i] /= windowEnergy[i]
		}
	}
	return out[:n]
}

// magnitudes returns |X| for every bin of every frame.
func magnitudes(frames [][]complex128) [][]float64 {
	mags := make([][]float64, len(frames))
	for t, frame := range frames {
		mags[t] = make([]float64, len(frame))
		for k, c := range frame {
			mags[t][k] = cmplx.Abs(c)
		}
	}
	return mags
}

// scaleBin rescales a complex bin to the target magnitude, preserving phase.
func scaleBin(c complex128, oldMag, newMag float64) complex128 {
	if oldMag <= 0 {
		return 0
	}
	return c * complex(newMag/oldMag, 0)
}
