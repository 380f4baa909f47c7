// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile is returned when the input lacks a fLaC stream marker.
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrCorruptStream is returned when a frame fails to parse mid-stream.
	ErrCorruptStream = errors.New("corrupt FLAC stream")
)
