// SPDX-License-Identifier: EPL-2.0

package device

import (
	"github.com/ik5/audiocore/audio"
)

// queueSize bounds the hotplug event queue. When the queue is full the
// oldest pending event is dropped; the registry re-syncs on the next full
// enumeration.
const queueSize = 64

// Registry holds the enumerated device list and tracks the default input
// and output devices.
//
// All methods except Notify must be called from the control goroutine; the
// registry does not lock the list. Notify may be called from any goroutine
// (typically a backend monitoring context); it only enqueues.
type Registry struct {
	devices []Device
	index   map[string]int

	defaultInput  string
	defaultOutput string

	queue       chan Event
	subscribers []func(Event)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
		queue: make(chan Event, queueSize),
	}
}

// Add inserts or replaces a device. A device flagged as default becomes
// the default for the directions it supports.
func (r *Registry) Add(d Device) {
	owned := d.clone()

	if i, ok := r.index[owned.ID]; ok {
		r.devices[i] = owned
	} else {
		r.index[owned.ID] = len(r.devices)
		r.devices = append(r.devices, owned)
	}

	if owned.IsDefault {
		if owned.CanCapture() {
			r.defaultInput = owned.ID
		}
		if owned.CanPlay() {
			r.defaultOutput = owned.ID
		}
	}
}

// Remove deletes a device by id. Returns ErrDeviceNotFound for an unknown
// id.
func (r *Registry) Remove(id string) error {
	i, ok := r.index[id]
	if !ok {
		return audio.NewError(audio.ErrDeviceNotFound, "cannot remove").WithDevice(id)
	}

	r.devices = append(r.devices[:i], r.devices[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.devices); j++ {
		r.index[r.devices[j].ID] = j
	}

	if r.defaultInput == id {
		r.defaultInput = ""
	}
	if r.defaultOutput == id {
		r.defaultOutput = ""
	}
	return nil
}

// Get returns a copy of the device with the given id.
func (r *Registry) Get(id string) (Device, error) {
	i, ok := r.index[id]
	if !ok {
		return Device{}, audio.NewError(audio.ErrDeviceNotFound, "lookup failed").WithDevice(id)
	}
	return r.devices[i].clone(), nil
}

// Devices returns copies of all devices in enumeration order.
func (r *Registry) Devices() []Device {
	out := make([]Device, len(r.devices))
	for i := range r.devices {
		out[i] = r.devices[i].clone()
	}
	return out
}

// Len returns the number of devices.
func (r *Registry) Len() int { return len(r.devices) }

// DefaultInput returns the default capture device.
func (r *Registry) DefaultInput() (Device, error) {
	return r.defaultFor(r.defaultInput, func(d *Device) bool { return d.CanCapture() })
}

// DefaultOutput returns the default playback device.
func (r *Registry) DefaultOutput() (Device, error) {
	return r.defaultFor(r.defaultOutput, func(d *Device) bool { return d.CanPlay() })
}

// defaultFor falls back to the first device of the right direction when no
// default was flagged during enumeration.
func (r *Registry) defaultFor(id string, usable func(*Device) bool) (Device, error) {
	if id != "" {
		if i, ok := r.index[id]; ok {
			return r.devices[i].clone(), nil
		}
	}
	for i := range r.devices {
		if usable(&r.devices[i]) {
			return r.devices[i].clone(), nil
		}
	}
	return Device{}, audio.NewError(audio.ErrDeviceNotFound, "no default device")
}

// SetDefaultInput marks an existing capture device as default. Unknown ids
// fail with ErrDeviceNotFound, devices without input channels with
// ErrDeviceUnsupported.
func (r *Registry) SetDefaultInput(id string) error {
	i, ok := r.index[id]
	if !ok {
		return audio.NewError(audio.ErrDeviceNotFound, "cannot set default input").WithDevice(id)
	}
	if !r.devices[i].CanCapture() {
		return audio.NewError(audio.ErrDeviceUnsupported, "device has no input channels").WithDevice(id)
	}
	r.defaultInput = id
	return nil
}

// SetDefaultOutput marks an existing playback device as default.
func (r *Registry) SetDefaultOutput(id string) error {
	i, ok := r.index[id]
	if !ok {
		return audio.NewError(audio.ErrDeviceNotFound, "cannot set default output").WithDevice(id)
	}
	if !r.devices[i].CanPlay() {
		return audio.NewError(audio.ErrDeviceUnsupported, "device has no output channels").WithDevice(id)
	}
	r.defaultOutput = id
	return nil
}

// Subscribe registers a callback invoked from Drain for every applied
// event. Must be called from the control goroutine.
func (r *Registry) Subscribe(fn func(Event)) {
	r.subscribers = append(r.subscribers, fn)
}

// Notify enqueues a device-change event from a monitoring context. It
// never blocks: when the queue is full the oldest pending event is dropped
// to make room.
func (r *Registry) Notify(ev Event) {
	for {
		select {
		case r.queue <- ev:
			return
		default:
			select {
			case <-r.queue:
			default:
			}
		}
	}
}

// Drain applies all queued events to the device list and dispatches them
// to subscribers, in arrival order. It must be called from the control
// goroutine and returns the number of events applied.
func (r *Registry) Drain() int {
	applied := 0
	for {
		select {
		case ev := <-r.queue:
			r.apply(ev)
			applied++
		default:
			return applied
		}
	}
}

func (r *Registry) apply(ev Event) {
	switch ev.Type {
	case EventAdded, EventChanged:
		r.Add(ev.Device)
	case EventRemoved:
		_ = r.Remove(ev.Device.ID)
	case EventDefaultChanged:
		if _, ok := r.index[ev.Device.ID]; !ok {
			r.Add(ev.Device)
		}
		if ev.Device.CanCapture() {
			r.defaultInput = ev.Device.ID
		}
		if ev.Device.CanPlay() {
			r.defaultOutput = ev.Device.ID
		}
	}

	for _, fn := range r.subscribers {
		fn(ev)
	}
}
