// SPDX-License-Identifier: EPL-2.0

package reduce

import (
	"context"
	"fmt"

	"github.com/idosh/clipwash/analysis"
	"github.com/idosh/clipwash/audio"
	"github.com/idosh/clipwash/utils"
)

// Options selects the cleanup stages for one Reduce invocation. The zero
// value disables everything.
type Options struct {
	// Strength of the spectral noise gate, in [0, 1]. Zero skips the gate.
	Strength float64 `json:"strength" mapstructure:"strength"`

	RemoveClicks  bool `json:"remove_clicks" mapstructure:"remove_clicks"`
	ReduceEcho    bool `json:"reduce_echo" mapstructure:"reduce_echo"`
	RemoveSilence bool `json:"remove_silence" mapstructure:"remove_silence"`
	Normalize     bool `json:"normalize" mapstructure:"normalize"`
}

// DefaultOptions returns the stock cleanup settings: a firm noise gate,
// click removal and normalization, with echo and silence handling off.
func DefaultOptions() Options {
	return Options{
		Strength:     0.75,
		RemoveClicks: true,
		Normalize:    true,
	}
}

// Validate checks the option ranges.
func (o Options) Validate() error {
	if o.Strength < 0 || o.Strength > 1 {
		return fmt.Errorf("%w: strength %v outside [0, 1]", ErrInvalidOptions, o.Strength)
	}
	return nil
}

// Report describes what a Reduce invocation did to the clip's timeline.
type Report struct {
	OriginalDuration  float64 `json:"original_duration"`
	ProcessedDuration float64 `json:"processed_duration"`
	SampleRate        int     `json:"sample_rate"`
}

// Reduce runs the option-gated cleanup chain over buf and returns a new
// buffer; the input is never modified. Stages apply in a fixed order: noise
// gate, click suppression, echo damping, silence trimming, normalization.
// Every stage preserves the sample rate and channel count, and only silence
// trimming changes the frame count.
//
// The computation is deterministic for identical input and options. ctx is
// checked between stages, so a caller can abandon a long run by cancelling.
func Reduce(ctx context.Context, buf *audio.Buffer, opts Options) (*audio.Buffer, *Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	if buf.Frames() == 0 || buf.Channels() == 0 {
		return nil, nil, audio.ErrEmptyInput
	}
	if err := buf.Validate(); err != nil {
		return nil, nil, fmt.Errorf("reduce: %w", err)
	}

	cfg := analysis.DefaultConfig()
	out := buf.Clone()

	if opts.Strength > 0 {
		t := newSTFT(stftSize, stftHop)
		for ch := range out.Data {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			out.Data[ch] = spectralGate(out.Data[ch], opts.Strength, cfg.NoisePercentile, t)
		}
	}

	if opts.RemoveClicks {
		for ch := range out.Data {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			out.Data[ch] = suppressClicks(out.Data[ch], out.SampleRate)
		}
	}

	if opts.ReduceEcho {
		t := newSTFT(stftSize, stftHop)
		for ch := range out.Data {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			out.Data[ch] = dampEcho(out.Data[ch], t)
		}
	}

	if opts.RemoveSilence {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		trimmed, err := trimSilence(out, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("reduce: trim silence: %w", err)
		}
		out = trimmed
	}

	if opts.Normalize {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		normalizePeak(out)
	}

	clampSamples(out)
	if err := out.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	report := &Report{
		OriginalDuration:  buf.Duration(),
		ProcessedDuration: out.Duration(),
		SampleRate:        out.SampleRate,
	}
	return out, report, nil
}

// clampSamples limits every sample to [-1, 1]. Spectral reconstruction can
// overshoot the original range by a small amount at stage boundaries.
func clampSamples(buf *audio.Buffer) {
	for _, samples := range buf.Data {
		for i, v := range samples {
			samples[i] = utils.Clamp(v, -1, 1)
		}
	}
}
