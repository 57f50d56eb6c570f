// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"math"
	"testing"
)

func TestNewResampler_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := NewResampler(0, 48000, 2); err != ErrInvalidRate {
		t.Errorf("NewResampler(0, ...) error = %v, want ErrInvalidRate", err)
	}
	if _, err := NewResampler(48000, 0, 2); err != ErrInvalidRate {
		t.Errorf("NewResampler(..., 0, ...) error = %v, want ErrInvalidRate", err)
	}
	if _, err := NewResampler(44100, 48000, 0); err != ErrInvalidChannels {
		t.Errorf("NewResampler(..., 0) error = %v, want ErrInvalidChannels", err)
	}
}

// TestConvert_UnityRatio feeds two consecutive chunks at ratio 1.0 and
// verifies the output reproduces the input exactly: every read position
// lands on an integer frame index, where interpolation yields the sample
// itself.
func TestConvert_UnityRatio(t *testing.T) {
	t.Parallel()

	r, err := NewResampler(8000, 8000, 1)
	if err != nil {
		t.Fatalf("NewResampler() error = %v", err)
	}

	chunk1 := []float32{0.0, 0.1, 0.2, 0.3, 0.4}
	chunk2 := []float32{0.5, 0.6, 0.7, 0.8, 0.9}

	out := make([]float32, 16)
	var got []float32

	n := r.Convert(chunk1, out)
	got = append(got, out[:n]...)
	n = r.Convert(chunk2, out)
	got = append(got, out[:n]...)

	// The final input frame stays cached as the edge for a next chunk, so
	// everything up to 0.8 must have been produced, in order, exactly.
	want := []float32{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	if len(got) != len(want) {
		t.Fatalf("produced %d samples, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v exactly", i, got[i], want[i])
		}
	}
}

func TestConvert_Upsample(t *testing.T) {
	t.Parallel()

	// Doubling the rate of a ramp interpolates midpoints.
	r, _ := NewResampler(4000, 8000, 1)

	in := []float32{0.0, 0.2, 0.4, 0.6}
	out := make([]float32, r.OutputFrames(len(in)))

	n := r.Convert(in, out)
	if n == 0 {
		t.Fatal("Convert() produced nothing")
	}

	// Position advances by 0.5 per output frame: 0, 0.5, 1, 1.5, 2, 2.5.
	want := []float32{0.0, 0.1, 0.2, 0.3, 0.4, 0.5}
	if n != len(want) {
		t.Fatalf("Convert() = %d frames, want %d", n, len(want))
	}
	for i := range want {
		if math.Abs(float64(out[i]-want[i])) > 1e-6 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestConvert_Downsample(t *testing.T) {
	t.Parallel()

	// Halving the rate keeps every other sample of a ramp.
	r, _ := NewResampler(8000, 4000, 1)

	in := make([]float32, 16)
	for i := range in {
		in[i] = float32(i) * 0.05
	}
	out := make([]float32, r.OutputFrames(len(in)))

	n := r.Convert(in, out)
	for i := 0; i < n; i++ {
		want := float32(2*i) * 0.05
		if math.Abs(float64(out[i]-want)) > 1e-6 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}

// TestConvert_StereoFrameWise verifies that interpolation is frame-wise:
// both channels of a stereo stream advance together and stop at the same
// boundary rule as mono data.
func TestConvert_StereoFrameWise(t *testing.T) {
	t.Parallel()

	r, _ := NewResampler(4000, 8000, 2)

	// Left is a rising ramp, right a falling one.
	in := []float32{
		0.0, 1.0,
		0.2, 0.8,
		0.4, 0.6,
	}
	out := make([]float32, r.OutputFrames(3)*2)

	n := r.Convert(in, out)
	if n != 4 {
		t.Fatalf("Convert() = %d frames, want 4", n)
	}

	want := []float32{
		0.0, 1.0,
		0.1, 0.9,
		0.2, 0.8,
		0.3, 0.7,
	}
	for i := range want {
		if math.Abs(float64(out[i]-want[i])) > 1e-6 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestConvert_OutputLimited(t *testing.T) {
	t.Parallel()

	r, _ := NewResampler(8000, 8000, 1)

	in := []float32{0.1, 0.2, 0.3, 0.4}
	out := make([]float32, 2)

	if n := r.Convert(in, out); n != 2 {
		t.Errorf("Convert() = %d frames, want 2 (output-limited)", n)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	r, _ := NewResampler(8000, 8000, 1)

	r.Convert([]float32{0.5, 0.6}, make([]float32, 4))
	r.Reset()

	// After Reset the converter behaves like a fresh one: no cached edge,
	// position zero.
	out := make([]float32, 4)
	n := r.Convert([]float32{0.7, 0.8}, out)
	if n != 1 {
		t.Fatalf("Convert() after Reset = %d frames, want 1", n)
	}
	if out[0] != 0.7 {
		t.Errorf("out[0] = %v, want 0.7", out[0])
	}
}

func TestOutputFrames(t *testing.T) {
	t.Parallel()

	r, _ := NewResampler(8000, 8000, 1)
	// Fresh converter, 5 input frames: positions 0..3 are producible
	// before the rule stops at the last frame.
	if got := r.OutputFrames(5); got != 4 {
		t.Errorf("OutputFrames(5) = %d, want 4", got)
	}

	up, _ := NewResampler(4000, 8000, 1)
	// Step 0.5 over 3 frames: positions 0, 0.5, 1, 1.5 are below 2.
	if got := up.OutputFrames(3); got != 4 {
		t.Errorf("OutputFrames(3) = %d, want 4", got)
	}
}
