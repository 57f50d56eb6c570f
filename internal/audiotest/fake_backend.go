// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/backend"
	"github.com/ik5/audiocore/device"
)

// FakeBackend is a scripted backend.Backend implementation. Tests set the
// failure fields to steer probe and open outcomes and inspect the counters
// afterwards.
type FakeBackend struct {
	BackendName string
	InitErr     error
	OpenErr     error
	DeviceList  []device.Device

	InitCalls   int
	UninitCalls int
	Streams     []*FakeStream
}

var _ backend.Backend = (*FakeBackend)(nil)

// NewFakeBackend returns a backend with one duplex device.
func NewFakeBackend(name string) *FakeBackend {
	return &FakeBackend{
		BackendName: name,
		DeviceList: []device.Device{
			{
				ID:             name + "-0",
				Name:           "Fake " + name,
				IsDefault:      true,
				InputChannels:  2,
				OutputChannels: 2,
			},
		},
	}
}

func (f *FakeBackend) Name() string { return f.BackendName }

func (f *FakeBackend) Init() error {
	f.InitCalls++
	return f.InitErr
}

func (f *FakeBackend) Uninit() error {
	f.UninitCalls++
	return nil
}

func (f *FakeBackend) Devices() ([]device.Device, error) {
	return append([]device.Device(nil), f.DeviceList...), nil
}

func (f *FakeBackend) OpenStream(deviceID string, cfg audio.Config, cb audio.Callback) (backend.Stream, error) {
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &FakeStream{
		Config:   cfg,
		Callback: cb,
		input:    make([]float32, cfg.BufferSize*int(cfg.Channels)),
		output:   make([]float32, cfg.BufferSize*int(cfg.Channels)),
	}
	f.Streams = append(f.Streams, s)
	return s, nil
}

// FakeStream records lifecycle calls and lets a test drive the callback by
// hand, standing in for the backend's real-time loop.
type FakeStream struct {
	Config   audio.Config
	Callback audio.Callback

	StartErr error
	StopErr  error

	Running    bool
	Closed     bool
	CloseCalls int

	input  []float32
	output []float32
}

var _ backend.Stream = (*FakeStream)(nil)

func (s *FakeStream) Start() error {
	if s.StartErr != nil {
		return s.StartErr
	}
	s.Running = true
	return nil
}

func (s *FakeStream) Stop() error {
	if s.StopErr != nil {
		return s.StopErr
	}
	s.Running = false
	return nil
}

func (s *FakeStream) Close() error {
	s.CloseCalls++
	s.Closed = true
	s.Running = false
	return nil
}

// Fire invokes the callback once with the stream's period buffers, as the
// real-time loop would, and returns the rendered output.
func (s *FakeStream) Fire() []float32 {
	s.Callback(s.input, s.output, s.Config.BufferSize)
	return s.output
}
