// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"math"
	"testing"

	"github.com/ik5/audiocore/audio"
)

func TestS16RoundTrip_WithinOneLSB(t *testing.T) {
	t.Parallel()

	// Every representable 16-bit value must survive the float round trip
	// within one least-significant bit.
	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		f := S16ToFloat32(int16(v))
		back := Float32ToS16(f)

		diff := int(back) - v
		if diff < -1 || diff > 1 {
			t.Fatalf("round trip %d -> %v -> %d, off by %d", v, f, back, diff)
		}
	}
}

func TestFloat32ToS16_Clamps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float32
		want int16
	}{
		{2.0, 32767},
		{1.0, 32767},
		{-1.0, -32767},
		{-2.0, -32767},
		{0.0, 0},
	}

	for _, tc := range cases {
		if got := Float32ToS16(tc.in); got != tc.want {
			t.Errorf("Float32ToS16(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFloat32ToS16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToS16(-1.5)
	for x := float32(-1.5); x <= 1.5; x += 0.001 {
		cur := Float32ToS16(x)
		if cur < prev {
			t.Fatalf("Float32ToS16 not monotonic at %v: %d < %d", x, cur, prev)
		}
		prev = cur
	}
}

func TestU8Conversion(t *testing.T) {
	t.Parallel()

	if got := U8ToFloat32(128); got != 0 {
		t.Errorf("U8ToFloat32(128) = %v, want 0 (silence)", got)
	}
	if got := U8ToFloat32(0); got != -1 {
		t.Errorf("U8ToFloat32(0) = %v, want -1", got)
	}
	if got := Float32ToU8(0); got != 128 {
		t.Errorf("Float32ToU8(0) = %d, want 128", got)
	}
	if got := Float32ToU8(-1); got != 0 {
		t.Errorf("Float32ToU8(-1) = %d, want 0", got)
	}
	if got := Float32ToU8(1); got != 255 {
		t.Errorf("Float32ToU8(1) = %d, want 255", got)
	}
}

func TestS24Conversion(t *testing.T) {
	t.Parallel()

	// 0x800000 is the most negative 24-bit value.
	if got := S24ToFloat32(0x00, 0x00, 0x80); got != -1 {
		t.Errorf("S24ToFloat32(min) = %v, want -1", got)
	}
	if got := S24ToFloat32(0, 0, 0); got != 0 {
		t.Errorf("S24ToFloat32(0) = %v, want 0", got)
	}

	// Positive max round trips within quantization error.
	b0, b1, b2 := Float32ToS24(1.0)
	if b0 != 0xff || b1 != 0xff || b2 != 0x7f {
		t.Errorf("Float32ToS24(1.0) = %02x %02x %02x, want ff ff 7f", b0, b1, b2)
	}

	for _, v := range []float32{-0.99, -0.5, -0.001, 0.001, 0.5, 0.99} {
		b0, b1, b2 := Float32ToS24(v)
		back := S24ToFloat32(b0, b1, b2)
		if math.Abs(float64(back-v)) > 1.0/8388608.0 {
			t.Errorf("s24 round trip %v -> %v, off by more than one step", v, back)
		}
	}
}

func TestDecodeSamples_S16(t *testing.T) {
	t.Parallel()

	// 0x4000 = 16384 -> 0.5; 0xc000 = -16384 -> -0.5.
	src := []byte{0x00, 0x40, 0x00, 0xc0}
	dst := make([]float32, 2)

	n, err := DecodeSamples(audio.FormatS16LE, src, dst)
	if err != nil {
		t.Fatalf("DecodeSamples() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("DecodeSamples() = %d samples, want 2", n)
	}
	if dst[0] != 0.5 || dst[1] != -0.5 {
		t.Errorf("decoded = %v, want [0.5 -0.5]", dst)
	}
}

func TestDecodeSamples_ShortBuffer(t *testing.T) {
	t.Parallel()

	src := []byte{0x00, 0x40, 0x7f} // one full sample plus one stray byte
	dst := make([]float32, 4)

	n, err := DecodeSamples(audio.FormatS16LE, src, dst)
	if err != ErrShortBuffer {
		t.Errorf("DecodeSamples() error = %v, want ErrShortBuffer", err)
	}
	if n != 1 {
		t.Errorf("DecodeSamples() = %d samples, want 1", n)
	}
}

func TestDecodeSamples_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := DecodeSamples(audio.FormatUnknown, []byte{0}, make([]float32, 1))
	if err != audio.ErrUnsupportedFormat {
		t.Errorf("DecodeSamples() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEncodeDecode_AllFormats(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.25, -0.25, 0.875, -0.875, 1, -1}

	formats := []struct {
		format    audio.SampleFormat
		tolerance float64
	}{
		{audio.FormatU8, 1.0 / 128.0},
		{audio.FormatS16LE, 1.0 / 32768.0},
		{audio.FormatS24LE, 1.0 / 8388608.0},
		{audio.FormatS32LE, 1.0 / 2147483648.0},
		{audio.FormatF32LE, 0},
		{audio.FormatF64LE, 0},
	}

	for _, f := range formats {
		raw := make([]byte, len(samples)*f.format.BytesPerSample())
		if n, err := EncodeSamples(f.format, samples, raw); err != nil || n != len(samples) {
			t.Fatalf("%s: EncodeSamples() = %d, %v", f.format, n, err)
		}

		back := make([]float32, len(samples))
		if n, err := DecodeSamples(f.format, raw, back); err != nil || n != len(samples) {
			t.Fatalf("%s: DecodeSamples() = %d, %v", f.format, n, err)
		}

		for i := range samples {
			if diff := math.Abs(float64(back[i] - samples[i])); diff > f.tolerance {
				t.Errorf("%s: sample %d round trip %v -> %v (tolerance %v)",
					f.format, i, samples[i], back[i], f.tolerance)
			}
		}
	}
}
