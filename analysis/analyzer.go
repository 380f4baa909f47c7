// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/idosh/clipwash/audio"
	"github.com/idosh/clipwash/utils"
)

// IssueTag labels a detected quality problem. Tags are derived from fixed
// thresholds on the measured metrics, so identical input yields identical tags.
type IssueTag string

const (
	IssueTooQuiet         IssueTag = "too_quiet"
	IssueClipping         IssueTag = "clipping"
	IssueHighNoiseFloor   IssueTag = "high_noise_floor"
	IssueExcessiveSilence IssueTag = "excessive_silence"
	IssueLowSNR           IssueTag = "low_snr"
)

// Rating buckets the quality score.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
)

// Quality summarizes the metric thresholds as a score, rating and issue set.
type Quality struct {
	Score  int        `json:"score"`
	Rating Rating     `json:"rating"`
	Issues []IssueTag `json:"issues"`
}

// Result holds the objective metrics of a clip. Levels are dBFS; digital
// silence is reported as the utils.SilenceFloorDB sentinel.
type Result struct {
	DurationSeconds   float64 `json:"duration_seconds"`
	SampleRate        int     `json:"sample_rate"`
	PeakDB            float64 `json:"peak_db"`
	AverageRMSDB      float64 `json:"average_rms_db"`
	NoiseFloorDB      float64 `json:"estimated_noise_floor_db"`
	SNRDB             float64 `json:"estimated_snr_db"`
	SilencePercentage float64 `json:"silence_percentage"`

	// ZeroCrossingRate and SpectralCentroidHz characterize the spectral
	// texture: sign-change density of the waveform and the magnitude-weighted
	// mean frequency ("brightness").
	ZeroCrossingRate   float64 `json:"zero_crossing_rate"`
	SpectralCentroidHz float64 `json:"spectral_centroid_hz"`

	Quality Quality `json:"quality_assessment"`
}

// Analyze measures buf with the default policy.
func Analyze(buf *audio.Buffer) (*Result, error) {
	return AnalyzeWithConfig(buf, DefaultConfig())
}

// AnalyzeWithConfig measures buf. The computation is a pure function of the
// buffer and config: no randomness, no shared state, safe to run in parallel
// with other invocations.
//
// Multi-channel clips are measured through a mono mixdown, so per-channel
// level differences are averaged rather than reported separately.
func AnalyzeWithConfig(buf *audio.Buffer, cfg Config) (*Result, error) {
	if buf.Frames() == 0 || buf.Channels() == 0 {
		return nil, audio.ErrEmptyInput
	}
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	mono, err := audio.MixToMono(buf)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	samples := mono.Data[0]

	peak := 0.0
	sumSquares := 0.0
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
		sumSquares += v * v
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))

	frameRMS := FrameRMS(samples, cfg.FrameLength(buf.SampleRate))
	noiseFloor := NoiseFloor(frameRMS, cfg.NoisePercentile)

	peakDB := utils.LinearToDB(peak)
	rmsDB := utils.LinearToDB(rms)
	noiseFloorDB := utils.LinearToDB(noiseFloor)

	snrDB := rmsDB - noiseFloorDB
	if snrDB < 0 {
		snrDB = 0
	}

	thresholdDB := cfg.SilenceThresholdDB(noiseFloorDB)
	silent := 0
	for _, r := range frameRMS {
		if utils.LinearToDB(r) < thresholdDB {
			silent++
		}
	}
	silencePct := 100 * float64(silent) / float64(len(frameRMS))

	result := &Result{
		DurationSeconds:    buf.Duration(),
		SampleRate:         buf.SampleRate,
		PeakDB:             peakDB,
		AverageRMSDB:       rmsDB,
		NoiseFloorDB:       noiseFloorDB,
		SNRDB:              snrDB,
		SilencePercentage:  silencePct,
		ZeroCrossingRate:   ZeroCrossingRate(samples),
		SpectralCentroidHz: SpectralCentroid(samples, buf.SampleRate),
	}
	result.Quality = assessQuality(result, cfg)

	return result, nil
}

// FrameRMS partitions samples into fixed-length frames and returns the RMS of
// each. The final partial frame is included. frameLen must be positive.
func FrameRMS(samples []float64, frameLen int) []float64 {
	if len(samples) == 0 {
		return nil
	}

	frames := (len(samples) + frameLen - 1) / frameLen
	out := make([]float64, 0, frames)

	for start := 0; start < len(samples); start += frameLen {
		end := start + frameLen
		if end > len(samples) {
			end = len(samples)
		}

		sum := 0.0
		for _, v := range samples[start:end] {
			sum += v * v
		}
		out = append(out, math.Sqrt(sum/float64(end-start)))
	}
	return out
}

// NoiseFloor estimates the noise level as the mean RMS of the lowest-energy
// percentile of frames. This approximates the level of the non-signal-bearing
// sections without voice-activity detection.
func NoiseFloor(frameRMS []float64, percentile float64) float64 {
	if len(frameRMS) == 0 {
		return 0
	}

	sorted := make([]float64, len(frameRMS))
	copy(sorted, frameRMS)
	sort.Float64s(sorted)

	n := int(math.Ceil(float64(len(sorted)) * percentile))
	if n < 1 {
		n = 1
	}
	if n > len(sorted) {
		n = len(sorted)
	}

	sum := 0.0
	for _, r := range sorted[:n] {
		sum += r
	}
	return sum / float64(n)
}

// assessQuality applies the fixed deduction table. Issue order follows the
// check order, so the issue list is deterministic.
func assessQuality(r *Result, cfg Config) Quality {
	score := 100
	var issues []IssueTag

	if r.PeakDB > cfg.ClippingPeakDB {
		score -= cfg.ClippingPenalty
		issues = append(issues, IssueClipping)
	}
	if r.AverageRMSDB < cfg.QuietRMSDB {
		score -= cfg.QuietPenalty
		issues = append(issues, IssueTooQuiet)
	}
	if r.NoiseFloorDB > cfg.NoisyFloorDB {
		score -= cfg.NoisePenalty
		issues = append(issues, IssueHighNoiseFloor)
	}
	if r.SNRDB < cfg.MinSNRDB {
		score -= cfg.SNRPenalty
		issues = append(issues, IssueLowSNR)
	}
	if r.SilencePercentage > cfg.MaxSilencePercent {
		score -= cfg.SilencePenalty
		issues = append(issues, IssueExcessiveSilence)
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	var rating Rating
	switch {
	case score >= 80:
		rating = RatingExcellent
	case score >= 60:
		rating = RatingGood
	case score >= 40:
		rating = RatingFair
	default:
		rating = RatingPoor
	}

	return Quality{Score: score, Rating: rating, Issues: issues}
}

// HasIssue reports whether the assessment contains tag.
func (q Quality) HasIssue(tag IssueTag) bool {
	for _, i := range q.Issues {
		if i == tag {
			return true
		}
	}
	return false
}
