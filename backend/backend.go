// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/device"
)

// Backend is one native audio integration. Implementations own a driver
// context between Init and Uninit and may assume the two are called from
// the control goroutine.
type Backend interface {
	// Name identifies the backend in errors and diagnostics.
	Name() string

	// Init brings up the driver context. It is called at most once per
	// chain selection; a failure moves the chain to the next candidate.
	Init() error

	// Uninit releases the driver context. It must be safe to call once
	// after a successful Init.
	Uninit() error

	// Devices enumerates the hardware this backend can reach.
	Devices() ([]device.Device, error)

	// OpenStream binds a stream to the device with the given id ("" means
	// the backend's default for the config's direction) and registers the
	// real-time callback. The stream starts stopped.
	OpenStream(deviceID string, cfg audio.Config, cb audio.Callback) (Stream, error)
}

// Stream is one backend-bound stream resource.
type Stream interface {
	// Start hands control to the backend's real-time loop, which invokes
	// the registered callback once per period.
	Start() error

	// Stop halts the real-time loop. It must not return before the
	// backend guarantees the callback will not fire again.
	Stop() error

	// Close releases the backend resource. Closing twice is a no-op.
	Close() error
}
