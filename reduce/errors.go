// SPDX-License-Identifier: EPL-2.0

package reduce

import "errors"

var (
	// ErrInvalidOptions is returned when Options fail validation, e.g. a
	// Strength outside [0, 1].
	ErrInvalidOptions = errors.New("invalid reduction options")

	// ErrProcessing indicates a stage-internal numeric failure. It should not
	// occur on valid input; seeing it means a defect, not a bad recording.
	ErrProcessing = errors.New("processing failure")
)
