// SPDX-License-Identifier: EPL-2.0

package reduce

import (
	"time"

	"github.com/idosh/clipwash/analysis"
	"github.com/idosh/clipwash/audio"
	"github.com/idosh/clipwash/utils"
)

const (
	// minSilenceDuration is the shortest span removed as silence.
	minSilenceDuration = 300 * time.Millisecond

	// silenceGuard is kept on each side of a removed span so cuts do not
	// clip the start or end of adjacent words.
	silenceGuard = 100 * time.Millisecond

	// fadeDuration is the linear fade applied at cut boundaries.
	fadeDuration = 10 * time.Millisecond
)

// trimSilence removes leading, trailing and interior spans whose frame RMS
// stays below the silence threshold for longer than minSilenceDuration. The
// detector is the analyzer's: frame RMS against the estimated noise floor plus
// margin, capped by the absolute ceiling. Kept audio bordering a cut is faded
// over fadeDuration.
//
// This is the only stage that changes the frame count.
func trimSilence(buf *audio.Buffer, cfg analysis.Config) (*audio.Buffer, error) {
	mono, err := audio.MixToMono(buf)
	if err != nil {
		return nil, err
	}

	frameLen := cfg.FrameLength(buf.SampleRate)
	frameRMS := analysis.FrameRMS(mono.Data[0], frameLen)
	noiseFloorDB := utils.LinearToDB(analysis.NoiseFloor(frameRMS, cfg.NoisePercentile))
	thresholdDB := cfg.SilenceThresholdDB(noiseFloorDB)

	silent := make([]bool, len(frameRMS))
	for i, r := range frameRMS {
		silent[i] = utils.LinearToDB(r) < thresholdDB
	}

	minFrames := int(minSilenceDuration / cfg.FrameDuration)
	if minFrames < 1 {
		minFrames = 1
	}
	guardFrames := int(silenceGuard / cfg.FrameDuration)

	// Mark frames for removal: silent runs of at least minFrames, shrunk by
	// the guard on each side.
	remove := make([]bool, len(silent))
	for i := 0; i < len(silent); {
		if !silent[i] {
			i++
			continue
		}
		j := i
		for j < len(silent) && silent[j] {
			j++
		}
		if j-i >= minFrames {
			for f := i + guardFrames; f < j-guardFrames; f++ {
				remove[f] = true
			}
		}
		i = j
	}

	// Collect kept sample ranges.
	type span struct{ start, end int }
	var kept []span
	frames := buf.Frames()
	for f := 0; f < len(remove); {
		if remove[f] {
			f++
			continue
		}
		g := f
		for g < len(remove) && !remove[g] {
			g++
		}
		start := f * frameLen
		end := g * frameLen
		if end > frames {
			end = frames
		}
		if start < end {
			kept = append(kept, span{start, end})
		}
		f = g
	}

	if len(kept) == 1 && kept[0].start == 0 && kept[0].end == frames {
		// Nothing to trim.
		return buf.Clone(), nil
	}

	total := 0
	for _, s := range kept {
		total += s.end - s.start
	}

	out := audio.NewBuffer(buf.Channels(), total, buf.SampleRate)
	fadeSamples := int(float64(buf.SampleRate) * fadeDuration.Seconds())

	for ch := range buf.Data {
		pos := 0
		for _, s := range kept {
			segment := out.Data[ch][pos : pos+s.end-s.start]
			copy(segment, buf.Data[ch][s.start:s.end])

			// Fade edges that border a cut.
			if len(segment) > 2*fadeSamples && fadeSamples > 0 {
				if s.start > 0 {
					for i := 0; i < fadeSamples; i++ {
						segment[i] *= float64(i) / float64(fadeSamples)
					}
				}
				if s.end < frames {
					for i := 0; i < fadeSamples; i++ {
						segment[len(segment)-1-i] *= float64(i) / float64(fadeSamples)
					}
				}
			}
			pos += s.end - s.start
		}
	}

	return out, nil
}
