// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import "errors"

var (
	// ErrBinaryNotFound is returned when no ffmpeg executable is on PATH.
	ErrBinaryNotFound = errors.New("ffmpeg binary not found")

	// ErrTranscode is returned when an ffmpeg invocation fails.
	ErrTranscode = errors.New("ffmpeg transcode failed")

	// ErrUnknownTarget is returned for output formats ffmpeg has no codec
	// mapping for here.
	ErrUnknownTarget = errors.New("unknown transcode target")
)
