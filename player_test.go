// SPDX-License-Identifier: EPL-2.0

package audiocore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/audiocore"
	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/backend"
	"github.com/ik5/audiocore/internal/audiotest"
)

// newFakeContext binds a context to a single scripted backend so tests can
// drive the real-time callback by hand.
func newFakeContext(t *testing.T, fake *audiotest.FakeBackend) *audiocore.Context {
	t.Helper()
	ctx, err := audiocore.NewContextWithBackends(silentOnly(), fake, backend.NewSilent())
	if err != nil {
		t.Fatalf("NewContextWithBackends() error = %v", err)
	}
	t.Cleanup(func() { ctx.Uninit() })
	return ctx
}

func TestPlayer_EndToEnd(t *testing.T) {
	t.Parallel()

	fake := audiotest.NewFakeBackend("fake")
	ctx := newFakeContext(t, fake)

	cfg := audio.Config{SampleRate: 8000, Channels: 1, BufferSize: 64}
	src := audiotest.NewRampBuffer(8000, 1, 256, 1.0/512.0)

	p, err := audiocore.NewPlayer(ctx, cfg, src)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	defer p.Close()

	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	fs := fake.Streams[0]
	if !fs.Running {
		t.Fatal("stream not running after Play")
	}

	// Stand in for the backend's real-time loop: fire the callback until
	// every sample has been consumed, giving the feeder goroutine time to
	// top the ring up between periods.
	var rendered []float32
	for i := 0; i < 100 && !p.Finished(); i++ {
		out := fs.Fire()
		rendered = append(rendered, out...)
		time.Sleep(2 * time.Millisecond)
	}

	if !p.Finished() {
		t.Fatal("playback did not finish")
	}
	p.Wait()

	if len(rendered) < len(src.Data) {
		t.Fatalf("rendered %d samples, want at least %d", len(rendered), len(src.Data))
	}
	for i, want := range src.Data {
		if rendered[i] != want {
			t.Fatalf("sample %d = %v, want %v", i, rendered[i], want)
		}
	}
	for i := len(src.Data); i < len(rendered); i++ {
		if rendered[i] != 0 {
			t.Fatalf("sample %d past end = %v, want silence", i, rendered[i])
		}
	}

	if got := p.Position(); got != src.Frames() {
		t.Errorf("Position() = %d, want %d", got, src.Frames())
	}
}

func TestPlayer_ConvertsLayout(t *testing.T) {
	t.Parallel()

	fake := audiotest.NewFakeBackend("fake")
	ctx := newFakeContext(t, fake)

	// Mono 4kHz source into a stereo 8kHz stream: the pipeline duplicates
	// the channel and roughly doubles the frame count before playback.
	cfg := audio.Config{SampleRate: 8000, Channels: 2, BufferSize: 64}
	src := audiotest.NewSineBuffer(4000, 1, 100, 200.0)

	p, err := audiocore.NewPlayer(ctx, cfg, src)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	defer p.Close()

	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	fs := fake.Streams[0]
	var left, right []float32
	for i := 0; i < 100 && !p.Finished(); i++ {
		out := fs.Fire()
		for f := 0; f+1 < len(out); f += 2 {
			left = append(left, out[f])
			right = append(right, out[f+1])
		}
		time.Sleep(2 * time.Millisecond)
	}

	if !p.Finished() {
		t.Fatal("playback did not finish")
	}

	// Duplicated mono: both channels carry identical samples.
	for i := range left {
		if left[i] != right[i] {
			t.Fatalf("frame %d: left %v != right %v", i, left[i], right[i])
		}
	}

	frames := p.Position()
	if frames < 190 || frames > 210 {
		t.Errorf("Position() = %d frames, want roughly twice the 100 source frames", frames)
	}
}

func TestPlayer_ConversionDisabled(t *testing.T) {
	t.Parallel()

	cfg := silentOnly()
	cfg.Conversion = false
	ctx, err := audiocore.NewContext(cfg)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	defer ctx.Uninit()

	stereo := audio.Config{SampleRate: 8000, Channels: 2, BufferSize: 64}

	mono := audiotest.NewSilentBuffer(8000, 1, 64)
	if _, err := audiocore.NewPlayer(ctx, stereo, mono); !errors.Is(err, audio.ErrUnsupportedChannelCount) {
		t.Errorf("NewPlayer(mono buffer) error = %v, want ErrUnsupportedChannelCount", err)
	}

	slow := audiotest.NewSilentBuffer(4000, 2, 64)
	if _, err := audiocore.NewPlayer(ctx, stereo, slow); !errors.Is(err, audio.ErrUnsupportedSampleRate) {
		t.Errorf("NewPlayer(4kHz buffer) error = %v, want ErrUnsupportedSampleRate", err)
	}
}

func TestPlayer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	ctx, err := audiocore.NewContext(silentOnly())
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	defer ctx.Uninit()

	if _, err := audiocore.NewPlayer(ctx, audio.DefaultConfig(), nil); !errors.Is(err, audio.ErrInvalidAudioData) {
		t.Errorf("NewPlayer(nil) error = %v, want ErrInvalidAudioData", err)
	}

	empty := &audio.Buffer{SampleRate: 48000, Channels: 2}
	if _, err := audiocore.NewPlayer(ctx, audio.DefaultConfig(), empty); !errors.Is(err, audio.ErrInvalidAudioData) {
		t.Errorf("NewPlayer(empty) error = %v, want ErrInvalidAudioData", err)
	}
}

func TestPlayer_CloseBeforeFinish(t *testing.T) {
	t.Parallel()

	fake := audiotest.NewFakeBackend("fake")
	ctx := newFakeContext(t, fake)

	cfg := audio.Config{SampleRate: 8000, Channels: 1, BufferSize: 64}
	src := audiotest.NewRampBuffer(8000, 1, 8000, 0.0001)

	p, err := audiocore.NewPlayer(ctx, cfg, src)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// Wait must not block once the player is closed.
	p.Wait()

	if !fake.Streams[0].Closed {
		t.Error("backend stream not closed")
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
