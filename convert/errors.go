// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	ErrShortBuffer      = errors.New("byte slice ends mid-sample")
	ErrInvalidChannels  = errors.New("channel count must be positive")
	ErrInvalidSliceSize = errors.New("slice size must be a multiple of channels")
	ErrInvalidRate      = errors.New("sample rate must be positive")
)
