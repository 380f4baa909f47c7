// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"

	"github.com/idosh/clipwash/audio"
)

// flacSource decodes FLAC frames lazily and serves interleaved float32
// samples.
type flacSource struct {
	stream     *goflac.Stream
	sampleRate int
	channels   int
	scale      float32

	// pending holds interleaved samples decoded from the current frame
	// that have not been handed out yet.
	pending []float32
	pos     int
}

func (s *flacSource) SampleRate() int { return s.sampleRate }
func (s *flacSource) Channels() int   { return s.channels }
func (s *flacSource) BufSize() int    { return 4096 }
func (s *flacSource) Close() error    { return s.stream.Close() }

func (s *flacSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	for s.pos >= len(s.pending) {
		fr, err := s.stream.ParseNext()
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrCorruptStream, err)
		}

		blockSize := int(fr.BlockSize)
		if cap(s.pending) < blockSize*s.channels {
			s.pending = make([]float32, blockSize*s.channels)
		}
		s.pending = s.pending[:blockSize*s.channels]
		s.pos = 0

		for ch, sub := range fr.Subframes {
			for i, v := range sub.Samples[:blockSize] {
				s.pending[i*s.channels+ch] = float32(v) / s.scale
			}
		}
	}

	n := copy(dst, s.pending[s.pos:])
	s.pos += n
	return n, nil
}

// Decoder decodes native FLAC streams.
type Decoder struct{}

// Decode parses a FLAC stream header and returns a Source that decodes
// frames on demand.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := goflac.New(r)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrNotFlacFile
		}
		return nil, fmt.Errorf("%w: %v", ErrNotFlacFile, err)
	}

	info := stream.Info
	return &flacSource{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      float32(int64(1) << (info.BitsPerSample - 1)),
	}, nil
}
