// SPDX-License-Identifier: EPL-2.0

package clipwash

import "errors"

var (
	// ErrUnsupportedFormat is returned when input bytes cannot be matched
	// to a supported format, or the hint names an unknown one.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrCorruptData is returned when input matches a known format but
	// fails to decode.
	ErrCorruptData = errors.New("corrupt audio data")
)
