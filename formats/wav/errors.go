// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile         = errors.New("not a WAV file")
	ErrUnsupportedLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16Supported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedChunks  = errors.New("unsupported WAV chunks")
)
