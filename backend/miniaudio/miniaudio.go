// SPDX-License-Identifier: EPL-2.0

package miniaudio

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gen2brain/malgo"

	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/backend"
	"github.com/ik5/audiocore/device"
)

// Backend drives audio hardware through malgo. The zero value is unusable;
// call Init before any other method.
type Backend struct {
	ctx *malgo.AllocatedContext
}

var _ backend.Backend = (*Backend)(nil)

// New returns an uninitialized miniaudio backend.
func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "miniaudio" }

// Init brings up the malgo context.
func (b *Backend) Init() error {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return audio.NewError(audio.ErrBackendInit, err.Error()).WithBackend(b.Name())
	}
	b.ctx = ctx
	return nil
}

// Uninit tears down the malgo context. Safe to call when Init never ran.
func (b *Backend) Uninit() error {
	if b.ctx == nil {
		return nil
	}
	err := b.ctx.Uninit()
	b.ctx.Free()
	b.ctx = nil
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Devices enumerates playback and capture hardware. The plain enumeration
// only yields ids and names; each device is probed with DeviceInfo for its
// native data formats, which carry channel counts, rates and sample
// formats where the host API reports them. Devices the probe cannot
// describe default to stereo with no capability set, which the capability
// model treats optimistically.
func (b *Backend) Devices() ([]device.Device, error) {
	if b.ctx == nil {
		return nil, audio.NewError(audio.ErrBackendInit, "context not initialized").WithBackend(b.Name())
	}

	var devices []device.Device

	playback, err := b.ctx.Devices(malgo.Playback)
	if err != nil {
		return nil, audio.NewError(audio.ErrDeviceUnavailable, err.Error()).WithBackend(b.Name())
	}
	for i, info := range playback {
		channels, caps := b.probe(malgo.Playback, info.ID)
		devices = append(devices, device.Device{
			ID:             fmt.Sprintf("playback-%d", i),
			Name:           info.Name(),
			IsDefault:      info.IsDefault > 0,
			OutputChannels: channels,
			Capabilities:   caps,
		})
	}

	capture, err := b.ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, audio.NewError(audio.ErrDeviceUnavailable, err.Error()).WithBackend(b.Name())
	}
	for i, info := range capture {
		channels, caps := b.probe(malgo.Capture, info.ID)
		devices = append(devices, device.Device{
			ID:            fmt.Sprintf("capture-%d", i),
			Name:          info.Name(),
			IsDefault:     info.IsDefault > 0,
			InputChannels: channels,
			Capabilities:  caps,
		})
	}

	return devices, nil
}

// probe asks malgo for the device's full record and condenses its native
// data formats. A failed probe is not an enumeration failure; the device
// stays listed as plain stereo.
func (b *Backend) probe(typ malgo.DeviceType, id malgo.DeviceID) (uint16, *device.Capabilities) {
	full, err := b.ctx.DeviceInfo(typ, id, malgo.Shared)
	if err != nil {
		return 2, nil
	}
	return condenseFormats(full.Formats[:full.FormatCount])
}

// condenseFormats folds malgo's native data formats into the declared
// channel count and a capability set: the channel range, the distinct
// rates, and the distinct sample formats this package can convert.
func condenseFormats(formats []malgo.DataFormat) (uint16, *device.Capabilities) {
	caps := &device.Capabilities{}
	rates := make(map[uint32]bool)
	kinds := make(map[audio.SampleFormat]bool)

	for _, df := range formats {
		if df.Channels > 0 {
			ch := uint16(df.Channels)
			if caps.MinChannels == 0 || ch < caps.MinChannels {
				caps.MinChannels = ch
			}
			if ch > caps.MaxChannels {
				caps.MaxChannels = ch
			}
		}
		if df.SampleRate > 0 && !rates[df.SampleRate] {
			rates[df.SampleRate] = true
			caps.SampleRates = append(caps.SampleRates, df.SampleRate)
		}
		if f, ok := sampleFormat(malgo.FormatType(df.Format)); ok && !kinds[f] {
			kinds[f] = true
			caps.Formats = append(caps.Formats, f)
		}
	}

	if caps.MaxChannels == 0 {
		return 2, nil
	}
	sort.Slice(caps.SampleRates, func(i, j int) bool {
		return caps.SampleRates[i] < caps.SampleRates[j]
	})
	return caps.MaxChannels, caps
}

// openErrorKind classifies an InitDevice failure. An exclusive-mode
// request that the device cannot grant fails with ErrExclusiveUnavailable;
// the stream never degrades to shared mode behind the caller's back.
func openErrorKind(mode audio.Mode) error {
	if mode == audio.ModeExclusive {
		return audio.ErrExclusiveUnavailable
	}
	return audio.ErrStreamCreationFailed
}

// sampleFormat maps a malgo wire format to this package's sample formats.
func sampleFormat(f malgo.FormatType) (audio.SampleFormat, bool) {
	switch f {
	case malgo.FormatU8:
		return audio.FormatU8, true
	case malgo.FormatS16:
		return audio.FormatS16LE, true
	case malgo.FormatS24:
		return audio.FormatS24LE, true
	case malgo.FormatS32:
		return audio.FormatS32LE, true
	case malgo.FormatF32:
		return audio.FormatF32LE, true
	}
	return audio.FormatUnknown, false
}

// lookup resolves one of this backend's device ids back to the malgo
// device list. An empty id selects the default playback device.
func (b *Backend) lookup(deviceID string) (malgo.DeviceType, *malgo.DeviceInfo, error) {
	if deviceID == "" {
		return malgo.Playback, nil, nil
	}

	deviceType := malgo.Playback
	prefix := "playback-"
	if strings.HasPrefix(deviceID, "capture-") {
		deviceType = malgo.Capture
		prefix = "capture-"
	} else if !strings.HasPrefix(deviceID, "playback-") {
		return 0, nil, audio.NewError(audio.ErrDeviceNotFound, "unrecognized device id").
			WithBackend(b.Name()).WithDevice(deviceID)
	}

	index, err := strconv.Atoi(strings.TrimPrefix(deviceID, prefix))
	if err != nil {
		return 0, nil, audio.NewError(audio.ErrDeviceNotFound, "malformed device id").
			WithBackend(b.Name()).WithDevice(deviceID)
	}

	infos, err := b.ctx.Devices(deviceType)
	if err != nil {
		return 0, nil, audio.NewError(audio.ErrDeviceUnavailable, err.Error()).
			WithBackend(b.Name()).WithDevice(deviceID)
	}
	if index < 0 || index >= len(infos) {
		return 0, nil, audio.NewError(audio.ErrDeviceNotFound, "device index out of range").
			WithBackend(b.Name()).WithDevice(deviceID)
	}

	info := infos[index]
	return deviceType, &info, nil
}

// OpenStream binds a malgo device in the direction implied by the device
// id and registers the real-time callback. The device runs float32 on the
// wire; scratch buffers are preallocated so the data path does not
// allocate. The stream starts stopped.
func (b *Backend) OpenStream(deviceID string, cfg audio.Config, cb audio.Callback) (backend.Stream, error) {
	if b.ctx == nil {
		return nil, audio.NewError(audio.ErrBackendInit, "context not initialized").WithBackend(b.Name())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deviceType, info, err := b.lookup(deviceID)
	if err != nil {
		return nil, err
	}

	deviceConfig := malgo.DefaultDeviceConfig(deviceType)
	deviceConfig.SampleRate = cfg.SampleRate
	deviceConfig.PeriodSizeInFrames = uint32(cfg.BufferSize)

	shareMode := malgo.Shared
	if cfg.Mode == audio.ModeExclusive {
		shareMode = malgo.Exclusive
	}

	switch deviceType {
	case malgo.Playback:
		deviceConfig.Playback.Format = malgo.FormatF32
		deviceConfig.Playback.Channels = uint32(cfg.Channels)
		deviceConfig.Playback.ShareMode = shareMode
		if info != nil {
			deviceConfig.Playback.DeviceID = info.ID.Pointer()
		}
	case malgo.Capture:
		deviceConfig.Capture.Format = malgo.FormatF32
		deviceConfig.Capture.Channels = uint32(cfg.Channels)
		deviceConfig.Capture.ShareMode = shareMode
		if info != nil {
			deviceConfig.Capture.DeviceID = info.ID.Pointer()
		}
	}

	s := &stream{
		backendName: b.Name(),
		deviceID:    deviceID,
		config:      cfg,
		deviceType:  deviceType,
		callback:    cb,
		inScratch:   make([]float32, cfg.BufferSize*int(cfg.Channels)),
		outScratch:  make([]float32, cfg.BufferSize*int(cfg.Channels)),
	}

	callbacks := malgo.DeviceCallbacks{Data: s.onData}

	dev, err := malgo.InitDevice(b.ctx.Context, deviceConfig, callbacks)
	if err != nil {
		return nil, audio.NewError(openErrorKind(cfg.Mode), err.Error()).
			WithBackend(b.Name()).WithDevice(deviceID)
	}

	s.device = dev
	return s, nil
}
