// SPDX-License-Identifier: EPL-2.0

package device

import (
	"github.com/ik5/audiocore/audio"
)

// Capabilities describes what a device supports. All bounds are inclusive.
// An empty SampleRates or Formats set means the backend could not probe
// the device fully; such capabilities claim basic support for any value.
type Capabilities struct {
	SampleRates []uint32
	Formats     []audio.SampleFormat

	MinChannels uint16
	MaxChannels uint16

	// Buffer size bounds in frames. Zero means unbounded.
	MinBufferSize int
	MaxBufferSize int

	// Latency bounds in microseconds. Zero means unknown.
	MinLatency uint32
	MaxLatency uint32

	SupportsExclusive bool
}

// SupportsSampleRate reports whether rate is in the declared set. An empty
// set claims support for any positive rate.
func (c *Capabilities) SupportsSampleRate(rate uint32) bool {
	if rate == 0 {
		return false
	}
	if len(c.SampleRates) == 0 {
		return true
	}
	for _, r := range c.SampleRates {
		if r == rate {
			return true
		}
	}
	return false
}

// SupportsFormat reports whether f is in the declared set. An empty set
// claims support for any known format.
func (c *Capabilities) SupportsFormat(f audio.SampleFormat) bool {
	if f.BytesPerSample() == 0 {
		return false
	}
	if len(c.Formats) == 0 {
		return true
	}
	for _, have := range c.Formats {
		if have == f {
			return true
		}
	}
	return false
}

// SupportsChannelCount reports whether channels falls inside the inclusive
// declared range. An undeclared range (both bounds zero) claims support
// for any positive count.
func (c *Capabilities) SupportsChannelCount(channels uint16) bool {
	if channels == 0 {
		return false
	}
	if c.MinChannels == 0 && c.MaxChannels == 0 {
		return true
	}
	return channels >= c.MinChannels && channels <= c.MaxChannels
}

// SupportsBufferSize reports whether frames falls inside the inclusive
// declared bounds. Zero bounds are unbounded on that side.
func (c *Capabilities) SupportsBufferSize(frames int) bool {
	if frames <= 0 {
		return false
	}
	if c.MinBufferSize > 0 && frames < c.MinBufferSize {
		return false
	}
	if c.MaxBufferSize > 0 && frames > c.MaxBufferSize {
		return false
	}
	return true
}

// SupportsConfig combines the membership checks for a whole stream
// configuration. Exclusive mode additionally requires SupportsExclusive.
func (c *Capabilities) SupportsConfig(cfg audio.Config) bool {
	if !c.SupportsSampleRate(cfg.SampleRate) {
		return false
	}
	if !c.SupportsChannelCount(cfg.Channels) {
		return false
	}
	if !c.SupportsBufferSize(cfg.BufferSize) {
		return false
	}
	if cfg.Mode == audio.ModeExclusive && !c.SupportsExclusive {
		return false
	}
	return true
}
