// SPDX-License-Identifier: EPL-2.0

package analysis

import "time"

// Config holds the measurement and scoring policy constants. The defaults are
// the supported policy; they are exposed as named values so boundary behavior
// can be tested directly instead of probing literals buried in the algorithm.
type Config struct {
	// FrameDuration is the analysis frame length used for RMS framing.
	FrameDuration time.Duration

	// NoisePercentile selects the fraction of lowest-energy frames whose RMS
	// approximates the noise floor.
	NoisePercentile float64

	// SilenceMarginDB is added to the noise floor to form the relative
	// silence threshold.
	SilenceMarginDB float64

	// SilenceCeilingDB caps the silence threshold: a frame louder than this
	// absolute level is never counted as silence, even when the estimated
	// noise floor sits near the signal level (constant tones, dense music).
	SilenceCeilingDB float64

	// Quality deduction thresholds.
	ClippingPeakDB    float64 // peak above this risks clipping
	QuietRMSDB        float64 // average RMS below this is too quiet
	NoisyFloorDB      float64 // noise floor above this is noisy
	MinSNRDB          float64 // SNR below this is poor
	MaxSilencePercent float64 // silence share above this is excessive

	// Quality deduction magnitudes (score points).
	ClippingPenalty int
	QuietPenalty    int
	NoisePenalty    int
	SNRPenalty      int
	SilencePenalty  int
}

// DefaultConfig returns the default analysis policy.
func DefaultConfig() Config {
	return Config{
		FrameDuration:   50 * time.Millisecond,
		NoisePercentile: 0.10,

		SilenceMarginDB:  3.0,
		SilenceCeilingDB: -40.0,

		ClippingPeakDB:    -1.0,
		QuietRMSDB:        -30.0,
		NoisyFloorDB:      -40.0,
		MinSNRDB:          15.0,
		MaxSilencePercent: 50.0,

		ClippingPenalty: 15,
		QuietPenalty:    20,
		NoisePenalty:    20,
		SNRPenalty:      30,
		SilencePenalty:  10,
	}
}

// FrameLength converts the configured frame duration to a sample count for
// the given rate. Always at least one sample.
func (c Config) FrameLength(sampleRate int) int {
	n := int(float64(sampleRate) * c.FrameDuration.Seconds())
	if n < 1 {
		n = 1
	}
	return n
}

// SilenceThresholdDB derives the frame-silence threshold from a noise floor
// estimate: the floor plus the margin, capped at the absolute ceiling.
func (c Config) SilenceThresholdDB(noiseFloorDB float64) float64 {
	threshold := noiseFloorDB + c.SilenceMarginDB
	if threshold > c.SilenceCeilingDB {
		threshold = c.SilenceCeilingDB
	}
	return threshold
}
