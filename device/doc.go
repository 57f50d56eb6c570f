// SPDX-License-Identifier: EPL-2.0

// Package device models audio hardware: device descriptors, declared
// capabilities, and a registry that tracks the enumerated device list and
// the default input and output devices.
//
// # Capabilities
//
// Capabilities describe what a device claims to support: sample rates,
// sample formats, channel counts, buffer sizes and latency bounds. All
// bounds are inclusive. An empty supported set means "unknown, assume
// basic support"; many devices are enumerated without full capability
// probing, so the model is deliberately optimistic:
//
//	caps := device.Capabilities{
//	    SampleRates: []uint32{44100, 48000},
//	    Formats:     []audio.SampleFormat{audio.FormatS16LE, audio.FormatF32LE},
//	    MinChannels: 1,
//	    MaxChannels: 8,
//	}
//	caps.SupportsConfig(cfg)
//
// A Device without any Capabilities at all is assumed to support any
// configuration up to its declared channel maxima.
//
// # The Registry
//
// A Registry owns the device list. Lookups return copies of the
// descriptors, never shared references, and every Device uniformly owns
// copies of its string fields. The list itself may only be mutated by the
// control goroutine.
//
// Hotplug notifications arrive asynchronously from a backend's monitoring
// context. They are never applied in place: Notify enqueues the event into
// a bounded queue and Drain, called from the control goroutine, applies the
// queued events to the list and dispatches them to subscribers. This keeps
// all mutation single-threaded without locking the list against the
// monitoring thread.
package device
