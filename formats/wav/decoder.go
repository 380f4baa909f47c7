// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/idosh/clipwash/audio"
)

// wavSource serves decoded PCM frames as float32 samples.
type wavSource struct {
	samples    []float32
	pos        int
	sampleRate int
	channels   int
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}
	n := copy(dst, s.samples[s.pos:])
	s.pos += n
	return n, nil
}

// Decoder decodes RIFF/WAVE PCM data.
type Decoder struct{}

// Decode parses a WAV stream and returns a Source over its samples. PCM at
// 8, 16, 24 and 32 bits per sample is accepted; other encodings return
// ErrUnsupportedBitDepth.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedData, err)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedBitDepth, bitDepth)
	}

	// 8-bit WAV is unsigned PCM centered on 0x80; deeper depths are signed.
	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	scale := float32(int64(1) << (bitDepth - 1))
	samples := make([]float32, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = float32(v-offset) / scale
	}

	return &wavSource{
		samples:    samples,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}
