// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/idosh/clipwash/audio"
	"github.com/idosh/clipwash/utils"
)

const headerSize = 44

// WritePCM16 writes buf as a canonical 16-bit PCM WAV: a 44-byte header
// followed by interleaved little-endian frames. Samples are clamped to
// [-1, 1] before quantization.
func WritePCM16(w io.Writer, buf *audio.Buffer) error {
	numChannels := uint16(buf.Channels())
	if numChannels == 0 {
		numChannels = 1
	}
	bitsPerSample := uint16(16)
	byteRate := uint32(buf.SampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := uint32(buf.Frames()) * uint32(blockAlign)
	riffSize := headerSize - 8 + dataSize

	header := make([]byte, headerSize)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(buf.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	frames := buf.Frames()
	if frames == 0 {
		return nil
	}

	// Interleave and quantize in chunks of whole frames.
	const chunkFrames = 4096
	chunk := make([]byte, min(frames, chunkFrames)*int(blockAlign))

	for start := 0; start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)
		n := end - start
		out := chunk[:n*int(blockAlign)]

		for f := 0; f < n; f++ {
			for ch, samples := range buf.Data {
				v := utils.Float32ToInt16(float32(samples[start+f]))
				off := (f*int(numChannels) + ch) * 2
				binary.LittleEndian.PutUint16(out[off:off+2], uint16(v))
			}
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Encode returns buf as a complete 16-bit PCM WAV file.
func Encode(buf *audio.Buffer) ([]byte, error) {
	out := bytes.NewBuffer(make([]byte, 0, headerSize+buf.Frames()*buf.Channels()*2))
	if err := WritePCM16(out, buf); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
