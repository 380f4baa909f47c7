// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to parse native FLAC streams.
// Frames are decoded on demand, so large files are not held in memory.
//
// # Decoding FLAC Files
//
// Use the Decoder to read FLAC files:
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Multi-channel files yield interleaved samples. Any bit depth the FLAC
// format allows is scaled to [-1.0, 1.0].
//
// # Limitations
//
// Note:
//   - FLAC encoding is not supported here (decoding only); re-encoding
//     goes through the ffmpeg package
package flac
