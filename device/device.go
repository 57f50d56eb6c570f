// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"

	"github.com/ik5/audiocore/audio"
)

// Device describes one piece of enumerated audio hardware. Identity is the
// ID field, unique within one registry. A Device owns copies of its string
// fields; descriptors never borrow storage from a backend.
type Device struct {
	ID        string
	Name      string
	IsDefault bool

	// Channel counts declare direction: a device with InputChannels > 0
	// can capture, one with OutputChannels > 0 can play.
	InputChannels  uint16
	OutputChannels uint16

	// Capabilities is nil when the backend enumerated the device without
	// probing it.
	Capabilities *Capabilities
}

// CanCapture reports whether the device has input channels.
func (d *Device) CanCapture() bool { return d.InputChannels > 0 }

// CanPlay reports whether the device has output channels.
func (d *Device) CanPlay() bool { return d.OutputChannels > 0 }

// SupportsConfig answers whether the device can run cfg as an output
// stream. Without capability information the model is optimistic: any
// configuration up to the declared channel maximum is assumed to work,
// since many devices are enumerated without full probing.
func (d *Device) SupportsConfig(cfg audio.Config) bool {
	if d.Capabilities == nil {
		limit := d.OutputChannels
		if d.InputChannels > limit {
			limit = d.InputChannels
		}
		return cfg.Channels > 0 && cfg.Channels <= limit
	}
	return d.Capabilities.SupportsConfig(cfg)
}

// String returns a human-readable one-line description.
func (d *Device) String() string {
	defaultMarker := ""
	if d.IsDefault {
		defaultMarker = " [DEFAULT]"
	}
	return fmt.Sprintf("%s: %s%s (in: %d, out: %d)",
		d.ID, d.Name, defaultMarker, d.InputChannels, d.OutputChannels)
}

// clone returns a deep copy so registry consumers never share storage with
// the registry's own descriptor.
func (d *Device) clone() Device {
	c := *d
	if d.Capabilities != nil {
		caps := *d.Capabilities
		caps.SampleRates = append([]uint32(nil), d.Capabilities.SampleRates...)
		caps.Formats = append([]audio.SampleFormat(nil), d.Capabilities.Formats...)
		c.Capabilities = &caps
	}
	return c
}
