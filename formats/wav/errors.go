// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile is returned when the input lacks a RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrTruncatedData is returned when the data chunk cannot be read in
	// full.
	ErrTruncatedData = errors.New("truncated WAV data")

	// ErrUnsupportedBitDepth is returned for sample encodings other than
	// 8, 16, 24 or 32 bit PCM.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
