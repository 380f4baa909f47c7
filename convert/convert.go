// SPDX-License-Identifier: EPL-2.0

// Package convert re-encodes a buffer into a target container, optionally
// resampling first. WAV output is rendered natively; every other format
// goes through the ffmpeg package.
package convert

import (
	"context"
	"fmt"

	"github.com/idosh/clipwash/audio"
	"github.com/idosh/clipwash/formats/ffmpeg"
	"github.com/idosh/clipwash/formats/wav"
	"github.com/idosh/clipwash/logger"
)

// Formats lists the supported target formats.
var Formats = []string{"mp3", "wav", "ogg", "flac", "m4a"}

// Bitrates lists the accepted bitrates for lossy targets.
var Bitrates = []string{"128k", "192k", "256k", "320k"}

// Options controls a conversion.
type Options struct {
	// Format is the target container: mp3, wav, ogg, flac or m4a.
	Format string `json:"format" mapstructure:"format"`

	// Bitrate applies to lossy targets (mp3, ogg, m4a) and is ignored for
	// wav and flac. One of 128k, 192k, 256k, 320k.
	Bitrate string `json:"bitrate" mapstructure:"bitrate"`

	// SampleRate resamples the audio before encoding when non-zero.
	SampleRate int `json:"sample_rate" mapstructure:"sample_rate"`
}

// DefaultOptions returns the stock conversion settings.
func DefaultOptions() Options {
	return Options{Format: "mp3", Bitrate: "192k"}
}

func lossy(format string) bool {
	switch format {
	case "mp3", "ogg", "m4a":
		return true
	}
	return false
}

// Validate checks the target format and parameters.
func (o Options) Validate() error {
	supported := false
	for _, f := range Formats {
		if o.Format == f {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, o.Format)
	}

	if lossy(o.Format) {
		ok := false
		for _, b := range Bitrates {
			if o.Bitrate == b {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: bitrate %q", ErrInvalidParameter, o.Bitrate)
		}
	}

	if o.SampleRate < 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, o.SampleRate)
	}
	return nil
}

// Convert encodes buf according to opts and returns the encoded file
// bytes. The input buffer is not modified.
func Convert(ctx context.Context, buf *audio.Buffer, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if buf.Frames() == 0 || buf.Channels() == 0 {
		return nil, audio.ErrEmptyInput
	}

	log := logger.WithComponent("convert").WithField("format", opts.Format)

	if opts.SampleRate != 0 && opts.SampleRate != buf.SampleRate {
		log.Debug().
			Int("from", buf.SampleRate).
			Int("to", opts.SampleRate).
			Msg("resampling before encode")
		resampled, err := audio.ResampleBuffer(buf, opts.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
		}
		buf = resampled
	}

	if opts.Format == "wav" {
		return wav.Encode(buf)
	}
	return ffmpeg.Encode(ctx, buf, opts.Format, opts.Bitrate)
}
