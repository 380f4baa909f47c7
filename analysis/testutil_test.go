package analysis

import (
	"math"

	"github.com/idosh/clipwash/audio"
)

// silentBuffer returns an all-zero mono buffer.
func silentBuffer(sampleRate int, seconds float64) *audio.Buffer {
	frames := int(float64(sampleRate) * seconds)
	return audio.NewBuffer(1, frames, sampleRate)
}

// sineBuffer returns a mono sine tone at the given amplitude.
func sineBuffer(sampleRate int, seconds, freq, amp float64) *audio.Buffer {
	frames := int(float64(sampleRate) * seconds)
	buf := audio.NewBuffer(1, frames, sampleRate)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		buf.Data[0][i] = amp * math.Sin(2*math.Pi*freq*t)
	}
	return buf
}

// speechLikeBuffer returns a mono buffer with a tone burst followed by a
// quiet noise tail, so the frame energies are bimodal like real speech.
// Noise uses a fixed-seed LCG so the buffer is deterministic.
func speechLikeBuffer(sampleRate int, toneSeconds, tailSeconds, toneAmp, noiseAmp float64) *audio.Buffer {
	toneFrames := int(float64(sampleRate) * toneSeconds)
	tailFrames := int(float64(sampleRate) * tailSeconds)
	buf := audio.NewBuffer(1, toneFrames+tailFrames, sampleRate)

	rngState := uint32(12345)
	nextRandom := func() float64 {
		// LCG parameters from Numerical Recipes
		rngState = rngState*1664525 + 1013904223
		return (float64(rngState)/float64(0xFFFFFFFF))*2.0 - 1.0
	}

	for i := 0; i < toneFrames; i++ {
		t := float64(i) / float64(sampleRate)
		buf.Data[0][i] = toneAmp*math.Sin(2*math.Pi*440*t) + noiseAmp*nextRandom()
	}
	for i := 0; i < tailFrames; i++ {
		buf.Data[0][toneFrames+i] = noiseAmp * nextRandom()
	}
	return buf
}
