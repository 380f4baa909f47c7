package reduce

import (
	"math"

	"github.com/idosh/clipwash/audio"
)

// sineBuffer returns a mono sine tone.
func sineBuffer(sampleRate int, seconds, freq, amp float64) *audio.Buffer {
	frames := int(float64(sampleRate) * seconds)
	buf := audio.NewBuffer(1, frames, sampleRate)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		buf.Data[0][i] = amp * math.Sin(2*math.Pi*freq*t)
	}
	return buf
}

// noisySineBuffer returns a sine tone with deterministic LCG noise mixed in.
func noisySineBuffer(sampleRate int, seconds, freq, toneAmp, noiseAmp float64) *audio.Buffer {
	buf := sineBuffer(sampleRate, seconds, freq, toneAmp)

	rngState := uint32(12345)
	for i := range buf.Data[0] {
		// LCG parameters from Numerical Recipes
		rngState = rngState*1664525 + 1013904223
		noise := (float64(rngState)/float64(0xFFFFFFFF))*2.0 - 1.0
		buf.Data[0][i] += noiseAmp * noise
	}
	return buf
}

// gappedBuffer returns a tone, a silent gap, then more tone.
func gappedBuffer(sampleRate int, toneSeconds, gapSeconds float64) *audio.Buffer {
	toneFrames := int(float64(sampleRate) * toneSeconds)
	gapFrames := int(float64(sampleRate) * gapSeconds)
	buf := audio.NewBuffer(1, 2*toneFrames+gapFrames, sampleRate)

	for i := 0; i < toneFrames; i++ {
		t := float64(i) / float64(sampleRate)
		v := 0.5 * math.Sin(2*math.Pi*440*t)
		buf.Data[0][i] = v
		buf.Data[0][toneFrames+gapFrames+i] = v
	}
	return buf
}

// peakOf returns the largest absolute sample across channels.
func peakOf(buf *audio.Buffer) float64 {
	peak := 0.0
	for _, samples := range buf.Data {
		for _, v := range samples {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
	}
	return peak
}
