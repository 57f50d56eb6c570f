// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/device"
)

// silentDeviceID identifies the single device the silent backend reports.
const silentDeviceID = "silent-0"

// Silent is the no-op fallback backend. Init never fails, the single
// reported device swallows any configuration, and streams opened on it
// never invoke their callback.
type Silent struct{}

// NewSilent returns the silent fallback backend.
func NewSilent() *Silent { return &Silent{} }

func (*Silent) Name() string { return "silent" }

func (*Silent) Init() error { return nil }

func (*Silent) Uninit() error { return nil }

func (*Silent) Devices() ([]device.Device, error) {
	return []device.Device{
		{
			ID:             silentDeviceID,
			Name:           "Silent Output",
			IsDefault:      true,
			OutputChannels: 2,
			Capabilities: &device.Capabilities{
				SupportsExclusive: true,
			},
		},
	}, nil
}

func (s *Silent) OpenStream(deviceID string, cfg audio.Config, cb audio.Callback) (Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deviceID != "" && deviceID != silentDeviceID {
		return nil, audio.NewError(audio.ErrDeviceNotFound, "silent backend has one device").
			WithBackend(s.Name()).WithDevice(deviceID)
	}
	return &silentStream{}, nil
}

type silentStream struct {
	closed bool
}

func (*silentStream) Start() error { return nil }

func (*silentStream) Stop() error { return nil }

func (s *silentStream) Close() error {
	s.closed = true
	return nil
}
