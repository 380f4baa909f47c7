// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	// ErrUnsupportedFormat is returned for target formats outside the
	// supported set.
	ErrUnsupportedFormat = errors.New("unsupported target format")

	// ErrInvalidParameter is returned for bitrates or sample rates outside
	// the supported ranges.
	ErrInvalidParameter = errors.New("invalid conversion parameter")
)
