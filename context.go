// SPDX-License-Identifier: EPL-2.0

package audiocore

import (
	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/backend"
	"github.com/ik5/audiocore/backend/miniaudio"
	"github.com/ik5/audiocore/config"
	"github.com/ik5/audiocore/device"
	"github.com/ik5/audiocore/stream"
)

// Context owns one bound backend, the device registry populated from it
// and the stream engine. All methods except RescanDevices must be called
// from the control goroutine.
type Context struct {
	cfg       *config.Config
	engine    *stream.Engine
	registry  *device.Registry
	selected  backend.Backend
	rescanner *backend.Rescanner
	closed    bool
}

// NewContext probes the backend fallback chain described by cfg, binds the
// first backend that initializes and enumerates its devices. A nil cfg
// uses DefaultConfig. The chain always ends with the silent no-op backend,
// so on a machine without working audio the context still comes up; its
// streams simply play nothing.
func NewContext(cfg *config.Config) (*Context, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var candidates []backend.Backend
	if cfg.Backends.Miniaudio {
		candidates = append(candidates, miniaudio.New())
	}
	candidates = append(candidates, backend.NewSilent())

	return NewContextWithBackends(cfg, candidates...)
}

// NewContextWithBackends probes the given candidates in order instead of
// the chain NewContext derives from cfg's toggles. The caller is expected
// to put a backend that cannot fail, such as backend.NewSilent, last.
func NewContextWithBackends(cfg *config.Config, candidates ...backend.Backend) (*Context, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engine := stream.NewEngine(backend.NewChain(candidates...))
	selected, err := engine.Backend()
	if err != nil {
		return nil, err
	}

	registry := device.NewRegistry()
	devices, err := selected.Devices()
	if err != nil {
		_ = engine.Shutdown()
		return nil, err
	}
	for _, d := range devices {
		registry.Add(d)
	}

	return &Context{
		cfg:       cfg,
		engine:    engine,
		registry:  registry,
		selected:  selected,
		rescanner: backend.NewRescanner(selected, registry, devices),
	}, nil
}

// BackendName returns the name of the bound backend.
func (c *Context) BackendName() string { return c.selected.Name() }

// Registry exposes the device registry for subscriptions and default
// device management.
func (c *Context) Registry() *device.Registry { return c.registry }

// Devices returns copies of the registered devices in enumeration order.
func (c *Context) Devices() []device.Device { return c.registry.Devices() }

// Device returns the device with the given id.
func (c *Context) Device(id string) (device.Device, error) {
	return c.registry.Get(id)
}

// DefaultInputDevice returns the default capture device.
func (c *Context) DefaultInputDevice() (device.Device, error) {
	return c.registry.DefaultInput()
}

// DefaultOutputDevice returns the default playback device.
func (c *Context) DefaultOutputDevice() (device.Device, error) {
	return c.registry.DefaultOutput()
}

// OpenStream validates cfg against the declared configuration sets and the
// target device's capabilities, then creates a stream bound to that device
// ("" selects the configured or default device). The returned stream is
// stopped; call Start on it.
//
// Rejections are specific: a rate outside the device's set fails with
// ErrUnsupportedSampleRate, a channel count outside its range with
// ErrUnsupportedChannelCount, exclusive mode on a device that cannot grant
// it with ErrExclusiveUnavailable.
func (c *Context) OpenStream(deviceID string, cfg audio.Config, cb audio.Callback) (*stream.Stream, error) {
	if c.closed {
		return nil, audio.NewError(audio.ErrStreamCreationFailed, "context is closed")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := c.checkDeclaredSets(cfg); err != nil {
		return nil, err
	}

	if deviceID == "" {
		deviceID = c.cfg.Device
	}
	if deviceID != "" {
		d, err := c.registry.Get(deviceID)
		if err != nil {
			return nil, err
		}
		if err := checkDevice(&d, cfg); err != nil {
			return nil, err
		}
	}

	return c.engine.Create(deviceID, cfg, cb)
}

// checkDeclaredSets enforces the configuration file's sample-rate and
// buffer-size restrictions before any device is consulted. Empty sets
// allow anything.
func (c *Context) checkDeclaredSets(cfg audio.Config) error {
	if c.cfg.Allows(cfg) {
		return nil
	}
	for _, rate := range c.cfg.SampleRates {
		if rate == cfg.SampleRate {
			return audio.NewError(audio.ErrInvalidBufferSize,
				"buffer size not in the configured set")
		}
	}
	if len(c.cfg.SampleRates) == 0 {
		return audio.NewError(audio.ErrInvalidBufferSize,
			"buffer size not in the configured set")
	}
	return audio.NewError(audio.ErrUnsupportedSampleRate,
		"sample rate not in the configured set")
}

// checkDevice maps a capability mismatch to its specific error kind.
func checkDevice(d *device.Device, cfg audio.Config) error {
	if d.SupportsConfig(cfg) {
		return nil
	}

	caps := d.Capabilities
	if caps != nil {
		switch {
		case !caps.SupportsSampleRate(cfg.SampleRate):
			return audio.NewError(audio.ErrUnsupportedSampleRate,
				"device does not support this sample rate").WithDevice(d.ID)
		case !caps.SupportsChannelCount(cfg.Channels):
			return audio.NewError(audio.ErrUnsupportedChannelCount,
				"device does not support this channel count").WithDevice(d.ID)
		case !caps.SupportsBufferSize(cfg.BufferSize):
			return audio.NewError(audio.ErrInvalidBufferSize,
				"device does not support this buffer size").WithDevice(d.ID)
		case cfg.Mode == audio.ModeExclusive && !caps.SupportsExclusive:
			return audio.NewError(audio.ErrExclusiveUnavailable,
				"device cannot grant exclusive access").WithDevice(d.ID)
		}
	}
	return audio.NewError(audio.ErrDeviceUnsupported,
		"device cannot run this configuration").WithDevice(d.ID)
}

// RescanDevices re-enumerates the backend's hardware and queues the
// difference against the previous enumeration as hotplug events. It only
// talks to the backend and the registry's queue, never to its device
// list, so one monitoring goroutine may call it while the control
// goroutine runs ProcessEvents. Nothing changes until ProcessEvents
// applies the queue. Disabled hotplug makes it a no-op.
func (c *Context) RescanDevices() error {
	if !c.cfg.Hotplug {
		return nil
	}
	return c.rescanner.Rescan()
}

// ProcessEvents applies queued hotplug events to the registry and
// dispatches them to subscribers. It must run on the control goroutine and
// returns the number of events applied.
func (c *Context) ProcessEvents() int {
	return c.registry.Drain()
}

// Uninit releases the backend. Streams created from the context must be
// closed first. Calling Uninit again is a no-op.
func (c *Context) Uninit() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.engine.Shutdown()
}
