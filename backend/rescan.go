// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"github.com/ik5/audiocore/device"
)

// Notifier receives device-change events. device.Registry satisfies it
// with a queue that the control goroutine drains later.
type Notifier interface {
	Notify(device.Event)
}

// Rescanner diffs successive hardware enumerations and reports the
// changes as hotplug events: additions, removals, renames and default
// changes. It keeps its own snapshot of the previous enumeration, so a
// rescan touches nothing but the backend and the notifier's Notify
// method; the registry's device list stays owned by the control
// goroutine.
//
// A Rescanner is not safe for concurrent use with itself; run it from one
// monitoring goroutine.
type Rescanner struct {
	backend  Backend
	notifier Notifier
	known    map[string]device.Device
}

// NewRescanner builds a rescanner over the backend. seed is the
// enumeration the registry was initially populated from, so the first
// rescan only reports changes relative to it.
func NewRescanner(b Backend, n Notifier, seed []device.Device) *Rescanner {
	known := make(map[string]device.Device, len(seed))
	for _, d := range seed {
		known[d.ID] = d
	}
	return &Rescanner{backend: b, notifier: n, known: known}
}

// Rescan re-enumerates the hardware, queues the difference against the
// previous enumeration and keeps the new one as the next baseline. The
// events take effect when the control goroutine drains the registry.
func (r *Rescanner) Rescan() error {
	current, err := r.backend.Devices()
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(current))
	for _, d := range current {
		seen[d.ID] = true

		old, ok := r.known[d.ID]
		switch {
		case !ok:
			r.notifier.Notify(device.Event{Type: device.EventAdded, Device: d})
		case d.IsDefault && !old.IsDefault:
			r.notifier.Notify(device.Event{Type: device.EventDefaultChanged, Device: d})
		case d.Name != old.Name:
			r.notifier.Notify(device.Event{Type: device.EventChanged, Device: d})
		}
	}

	for id, d := range r.known {
		if !seen[id] {
			r.notifier.Notify(device.Event{Type: device.EventRemoved, Device: d})
		}
	}

	next := make(map[string]device.Device, len(current))
	for _, d := range current {
		next[d.ID] = d
	}
	r.known = next
	return nil
}
