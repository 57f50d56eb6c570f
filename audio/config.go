// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Mode selects how the stream shares the device with other applications.
type Mode int

const (
	// ModeShared lets the operating system mix this stream with others.
	ModeShared Mode = iota
	// ModeExclusive requests sole ownership of the device. Opening an
	// exclusive stream fails deterministically when the backend or the
	// device cannot grant it; it never degrades silently to shared mode.
	ModeExclusive
)

func (m Mode) String() string {
	switch m {
	case ModeShared:
		return "shared"
	case ModeExclusive:
		return "exclusive"
	}
	return "unknown"
}

// Config holds configuration for an audio stream.
// It is immutable once a stream has been created from it.
type Config struct {
	// SampleRate is the number of frames per second (Hz).
	// Common values: 16000, 44100, 48000.
	SampleRate uint32

	// Channels is the number of interleaved channels per frame.
	// 1 = mono, 2 = stereo.
	Channels uint16

	// BufferSize is the callback period length in frames (not bytes).
	// Smaller = lower latency, higher CPU usage.
	BufferSize int

	// Mode selects shared or exclusive device access.
	Mode Mode
}

// DefaultConfig returns a configuration suitable for most playback uses:
// 48kHz stereo with a 480-frame (10ms) period in shared mode.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		Channels:   2,
		BufferSize: 480,
		Mode:       ModeShared,
	}
}

// Validate reports ErrInvalidConfig when any field is out of range.
// Device-specific limits are checked later, at stream bind time.
func (c Config) Validate() error {
	if c.SampleRate == 0 {
		return NewError(ErrInvalidConfig, "sample rate must be positive")
	}
	if c.Channels == 0 {
		return NewError(ErrInvalidConfig, "channel count must be positive")
	}
	if c.BufferSize <= 0 {
		return NewError(ErrInvalidConfig,
			fmt.Sprintf("buffer size must be positive, got %d", c.BufferSize))
	}
	return nil
}
