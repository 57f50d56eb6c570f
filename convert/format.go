// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audiocore/audio"
)

// clampUnit limits x to [-1, 1].
func clampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// S16ToFloat32 converts one signed 16-bit sample to [-1, 1].
func S16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToS16 converts one float sample to signed 16-bit, clamping to
// [-1, 1] and rounding to the nearest representable integer.
func Float32ToS16(x float32) int16 {
	return int16(math.Round(float64(clampUnit(x)) * 32767.0))
}

// U8ToFloat32 converts one unsigned 8-bit sample (silence at 128) to [-1, 1].
func U8ToFloat32(v uint8) float32 {
	return (float32(v) - 128.0) / 128.0
}

// Float32ToU8 converts one float sample to unsigned 8-bit.
func Float32ToU8(x float32) uint8 {
	r := math.Round(float64(clampUnit(x)) * 128.0)
	if r > 127 {
		r = 127
	}
	return uint8(r + 128)
}

// S24ToFloat32 sign-extends a 3-byte little-endian sample and scales by 2^23.
func S24ToFloat32(b0, b1, b2 byte) float32 {
	v := int32(b0) | int32(b1)<<8 | int32(b2)<<16
	if v&0x800000 != 0 {
		v |= ^int32(0xffffff) // sign-extend bit 23
	}
	return float32(v) / 8388608.0
}

// Float32ToS24 converts one float sample to a 3-byte little-endian value.
func Float32ToS24(x float32) (b0, b1, b2 byte) {
	v := int32(math.Round(float64(clampUnit(x)) * 8388607.0))
	return byte(v), byte(v >> 8), byte(v >> 16)
}

// S32ToFloat32 converts one signed 32-bit sample to [-1, 1].
func S32ToFloat32(v int32) float32 {
	return float32(float64(v) / 2147483648.0)
}

// Float32ToS32 converts one float sample to signed 32-bit.
func Float32ToS32(x float32) int32 {
	return int32(math.Round(float64(clampUnit(x)) * 2147483647.0))
}

// DecodeSamples converts raw little-endian bytes in format f into canonical
// float32 samples. It converts min(len(src)/width, len(dst)) samples and
// returns the count. A trailing partial sample in src yields ErrShortBuffer
// after the whole samples have been converted; an unknown format yields
// audio.ErrUnsupportedFormat.
func DecodeSamples(f audio.SampleFormat, src []byte, dst []float32) (int, error) {
	width := f.BytesPerSample()
	if width == 0 {
		return 0, audio.ErrUnsupportedFormat
	}

	n := len(src) / width
	if n > len(dst) {
		n = len(dst)
	}

	switch f {
	case audio.FormatU8:
		for i := 0; i < n; i++ {
			dst[i] = U8ToFloat32(src[i])
		}
	case audio.FormatS16LE:
		for i := 0; i < n; i++ {
			dst[i] = S16ToFloat32(int16(binary.LittleEndian.Uint16(src[2*i:])))
		}
	case audio.FormatS24LE:
		for i := 0; i < n; i++ {
			dst[i] = S24ToFloat32(src[3*i], src[3*i+1], src[3*i+2])
		}
	case audio.FormatS32LE:
		for i := 0; i < n; i++ {
			dst[i] = S32ToFloat32(int32(binary.LittleEndian.Uint32(src[4*i:])))
		}
	case audio.FormatF32LE:
		for i := 0; i < n; i++ {
			dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[4*i:]))
		}
	case audio.FormatF64LE:
		for i := 0; i < n; i++ {
			dst[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(src[8*i:])))
		}
	}

	if n == len(dst) {
		return n, nil
	}
	if len(src)%width != 0 {
		return n, ErrShortBuffer
	}
	return n, nil
}

// EncodeSamples converts canonical float32 samples into raw little-endian
// bytes in format f, clamping each sample to the format's range. It
// converts min(len(src), len(dst)/width) samples and returns the count.
func EncodeSamples(f audio.SampleFormat, src []float32, dst []byte) (int, error) {
	width := f.BytesPerSample()
	if width == 0 {
		return 0, audio.ErrUnsupportedFormat
	}

	n := len(dst) / width
	if n > len(src) {
		n = len(src)
	}

	switch f {
	case audio.FormatU8:
		for i := 0; i < n; i++ {
			dst[i] = Float32ToU8(src[i])
		}
	case audio.FormatS16LE:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(dst[2*i:], uint16(Float32ToS16(src[i])))
		}
	case audio.FormatS24LE:
		for i := 0; i < n; i++ {
			dst[3*i], dst[3*i+1], dst[3*i+2] = Float32ToS24(src[i])
		}
	case audio.FormatS32LE:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(dst[4*i:], uint32(Float32ToS32(src[i])))
		}
	case audio.FormatF32LE:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(clampUnit(src[i])))
		}
	case audio.FormatF64LE:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint64(dst[8*i:], math.Float64bits(float64(src[i])))
		}
	}

	return n, nil
}
