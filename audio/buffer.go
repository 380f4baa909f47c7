// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// Buffer holds a fully decoded clip as de-interleaved per-channel samples.
// Samples are float64 in [-1, 1]; every channel has the same frame count.
// Pipeline stages never mutate a Buffer in place: they return a new one, so
// a Buffer can be shared between concurrent invocations.
type Buffer struct {
	// Data is indexed [channel][frame].
	Data       [][]float64
	SampleRate int
}

// NewBuffer allocates a zeroed buffer with the given shape.
func NewBuffer(channels, frames, sampleRate int) *Buffer {
	data := make([][]float64, channels)
	for ch := range data {
		data[ch] = make([]float64, frames)
	}
	return &Buffer{Data: data, SampleRate: sampleRate}
}

// Channels returns the channel count.
func (b *Buffer) Channels() int { return len(b.Data) }

// Frames returns the per-channel frame count.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration returns the clip length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Data:       make([][]float64, len(b.Data)),
		SampleRate: b.SampleRate,
	}
	for ch, samples := range b.Data {
		out.Data[ch] = make([]float64, len(samples))
		copy(out.Data[ch], samples)
	}
	return out
}

// Interleaved flattens the buffer into frame-major interleaved samples.
func (b *Buffer) Interleaved() []float64 {
	channels := b.Channels()
	frames := b.Frames()
	out := make([]float64, channels*frames)
	for ch, samples := range b.Data {
		for f, v := range samples {
			out[f*channels+ch] = v
		}
	}
	return out
}

// Validate checks the buffer invariants: a positive sample rate, at least one
// channel, equal frame counts across channels, and finite sample values.
func (b *Buffer) Validate() error {
	if b.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(b.Data) == 0 {
		return ErrEmptyInput
	}
	frames := len(b.Data[0])
	for ch, samples := range b.Data {
		if len(samples) != frames {
			return fmt.Errorf("channel %d: %w", ch, ErrRaggedChannels)
		}
		for i, v := range samples {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("channel %d sample %d: %w", ch, i, ErrNonFiniteSample)
			}
		}
	}
	return nil
}

// ReadAll drains src and collects its samples into a Buffer.
// The source is closed before returning.
func ReadAll(src Source) (*Buffer, error) {
	defer func() { _ = src.Close() }()

	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrEmptyInput
	}

	var interleaved []float64
	buf := make([]float32, 4096*channels)

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			interleaved = append(interleaved, float64(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
	}

	frames := len(interleaved) / channels
	out := NewBuffer(channels, frames, src.SampleRate())
	for f := 0; f < frames; f++ {
		for ch := 0; ch < channels; ch++ {
			out.Data[ch][f] = interleaved[f*channels+ch]
		}
	}
	return out, nil
}

// bufferSource adapts a Buffer back into a streaming Source so the buffer can
// be fed through the Resampler and MonoMixer pipeline.
type bufferSource struct {
	buf *Buffer
	pos int // frame cursor
}

// NewBufferSource wraps buf as a Source. The buffer is not copied; the caller
// must not modify it while the source is being read.
func NewBufferSource(buf *Buffer) Source {
	return &bufferSource{buf: buf}
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.Channels()
	if channels == 0 || s.pos >= s.buf.Frames() {
		return 0, io.EOF
	}
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / channels
	remaining := s.buf.Frames() - s.pos
	if frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		for ch := 0; ch < channels; ch++ {
			dst[f*channels+ch] = float32(s.buf.Data[ch][s.pos+f])
		}
	}
	s.pos += frames

	if s.pos >= s.buf.Frames() {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}

// ResampleBuffer converts buf to targetRate using the streaming cubic
// Resampler. A buffer already at targetRate is returned as a copy.
func ResampleBuffer(buf *Buffer, targetRate int) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if buf.Frames() == 0 {
		return nil, ErrEmptyInput
	}
	if targetRate == buf.SampleRate {
		return buf.Clone(), nil
	}

	out, err := ReadAll(NewResampler(NewBufferSource(buf), targetRate))
	if err != nil {
		return nil, fmt.Errorf("resample %d -> %d Hz: %w", buf.SampleRate, targetRate, err)
	}
	return out, nil
}

// MixToMono collapses buf to a single channel by averaging, using the
// streaming MonoMixer. Mono input is returned as a copy.
func MixToMono(buf *Buffer) (*Buffer, error) {
	if buf.Frames() == 0 {
		return nil, ErrEmptyInput
	}
	if buf.Channels() == 1 {
		return buf.Clone(), nil
	}

	out, err := ReadAll(NewMonoMixer(NewBufferSource(buf)))
	if err != nil {
		return nil, fmt.Errorf("mix to mono: %w", err)
	}
	return out, nil
}
