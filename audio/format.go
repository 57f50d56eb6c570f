// SPDX-License-Identifier: EPL-2.0

package audio

// SampleFormat identifies a PCM sample encoding. The set is closed: both
// capability negotiation and the conversion routines enumerate it
// exhaustively.
type SampleFormat int

const (
	FormatUnknown SampleFormat = iota
	// FormatU8 is unsigned 8-bit, silence at 128.
	FormatU8
	// FormatS16LE is signed 16-bit little-endian.
	FormatS16LE
	// FormatS24LE is signed 24-bit little-endian, packed in 3 bytes.
	FormatS24LE
	// FormatS32LE is signed 32-bit little-endian.
	FormatS32LE
	// FormatF32LE is 32-bit IEEE float little-endian.
	FormatF32LE
	// FormatF64LE is 64-bit IEEE float little-endian.
	FormatF64LE
)

// BytesPerSample returns the fixed byte width of one sample, or 0 for an
// unknown format.
func (f SampleFormat) BytesPerSample() int {
	switch f {
	case FormatU8:
		return 1
	case FormatS16LE:
		return 2
	case FormatS24LE:
		return 3
	case FormatS32LE, FormatF32LE:
		return 4
	case FormatF64LE:
		return 8
	}
	return 0
}

// IsFloat reports whether the format stores floating-point samples.
func (f SampleFormat) IsFloat() bool {
	return f == FormatF32LE || f == FormatF64LE
}

func (f SampleFormat) String() string {
	switch f {
	case FormatU8:
		return "u8"
	case FormatS16LE:
		return "s16le"
	case FormatS24LE:
		return "s24le"
	case FormatS32LE:
		return "s32le"
	case FormatF32LE:
		return "f32le"
	case FormatF64LE:
		return "f64le"
	}
	return "unknown"
}
