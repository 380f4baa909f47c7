// SPDX-License-Identifier: EPL-2.0

package clipwash

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/idosh/clipwash/analysis"
	"github.com/idosh/clipwash/audio"
	"github.com/idosh/clipwash/convert"
	"github.com/idosh/clipwash/formats/ffmpeg"
	"github.com/idosh/clipwash/formats/flac"
	"github.com/idosh/clipwash/formats/mp3"
	"github.com/idosh/clipwash/formats/vorbis"
	"github.com/idosh/clipwash/formats/wav"
	"github.com/idosh/clipwash/reduce"
)

// DefaultRegistry maps format keys to the native decoders. M4A has no
// native decoder and is handled through the ffmpeg package by Ingest.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("flac", flac.Decoder{})
	return r
}

// Formats lists the format keys Ingest accepts: the registered native
// decoders plus the ffmpeg-backed m4a path. Sorted for stable output.
func Formats() []string {
	out := append(DefaultRegistry.Formats(), "m4a")
	sort.Strings(out)
	return out
}

// sniffFormat guesses the container from magic bytes. Returns "" when
// nothing matches.
func sniffFormat(data []byte) string {
	switch {
	case len(data) >= 12 &&
		bytes.HasPrefix(data, []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WAVE")):
		return "wav"
	case bytes.HasPrefix(data, []byte("fLaC")):
		return "flac"
	case bytes.HasPrefix(data, []byte("OggS")):
		return "ogg"
	case len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp")):
		return "m4a"
	case bytes.HasPrefix(data, []byte("ID3")):
		return "mp3"
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// Bare MPEG frame sync.
		return "mp3"
	}
	return ""
}

// Ingest decodes encoded audio bytes into a Buffer. hint names the format
// ("wav", "mp3", "ogg", "flac", "m4a"); when empty, the format is sniffed
// from magic bytes. Unknown input returns ErrUnsupportedFormat and decode
// failures return ErrCorruptData.
func Ingest(data []byte, hint string) (*audio.Buffer, error) {
	if len(data) == 0 {
		return nil, audio.ErrEmptyInput
	}

	format := hint
	if format == "" {
		format = sniffFormat(data)
	}
	if format == "" {
		return nil, ErrUnsupportedFormat
	}

	var (
		src audio.Source
		err error
	)
	if format == "m4a" {
		src, err = ffmpeg.DecodeBytes(context.Background(), data, "m4a")
		if errors.Is(err, ffmpeg.ErrBinaryNotFound) {
			return nil, fmt.Errorf("%w: m4a decoding requires ffmpeg", ErrUnsupportedFormat)
		}
	} else {
		dec, ok := DefaultRegistry.Get(format)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
		}
		src, err = dec.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if buf.Frames() == 0 {
		return nil, audio.ErrEmptyInput
	}
	return buf, nil
}

// ClipInfo summarizes an encoded clip without exposing its samples.
type ClipInfo struct {
	Format     string  `json:"format"`
	Duration   float64 `json:"duration_seconds"`
	SampleRate int     `json:"sample_rate"`
	Channels   int     `json:"channels"`
	Frames     int     `json:"frames"`
}

// Info decodes just enough of the clip to report its basic properties.
func Info(data []byte, hint string) (*ClipInfo, error) {
	format := hint
	if format == "" {
		format = sniffFormat(data)
	}

	buf, err := Ingest(data, hint)
	if err != nil {
		return nil, err
	}

	return &ClipInfo{
		Format:     format,
		Duration:   buf.Duration(),
		SampleRate: buf.SampleRate,
		Channels:   buf.Channels(),
		Frames:     buf.Frames(),
	}, nil
}

// Analyze measures the clip and scores its quality.
func Analyze(buf *audio.Buffer) (*analysis.Result, error) {
	return analysis.Analyze(buf)
}

// Reduce runs the cleanup chain over buf.
func Reduce(ctx context.Context, buf *audio.Buffer, opts reduce.Options) (*audio.Buffer, *reduce.Report, error) {
	return reduce.Reduce(ctx, buf, opts)
}

// Convert re-encodes buf into the target format.
func Convert(ctx context.Context, buf *audio.Buffer, opts convert.Options) ([]byte, error) {
	return convert.Convert(ctx, buf, opts)
}
