// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrEmptyInput is returned when an operation requires signal but the
	// buffer holds zero frames or zero channels.
	ErrEmptyInput = errors.New("empty input buffer")

	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrRaggedChannels    = errors.New("channels have unequal frame counts")
	ErrNonFiniteSample   = errors.New("sample value is NaN or infinite")
)
