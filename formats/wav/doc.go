// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and encoding.
//
// Decoding is backed by github.com/go-audio/wav and accepts PCM at 8, 16,
// 24 and 32 bits per sample, any channel count and any sample rate. The
// decoder returns an audio.Source yielding interleaved float32 samples in
// [-1.0, 1.0].
//
// Encoding always produces canonical 16-bit PCM with a 44-byte header:
//
//	data, err := wav.Encode(buf)
//
// or stream directly with WritePCM16. Samples outside [-1, 1] are clamped
// before quantization.
//
// # Error Handling
//
// The package defines sentinel errors for the common failure modes:
//   - ErrNotWavFile: the input lacks a RIFF/WAVE header
//   - ErrTruncatedData: the data chunk ends early
//   - ErrUnsupportedBitDepth: sample encoding other than 8/16/24/32-bit PCM
package wav
