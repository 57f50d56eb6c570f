// SPDX-License-Identifier: EPL-2.0

package device

// EventType classifies a device-change notification.
type EventType int

const (
	// EventAdded signals hardware that appeared.
	EventAdded EventType = iota
	// EventRemoved signals hardware that went away.
	EventRemoved
	// EventChanged signals a descriptor change for existing hardware.
	EventChanged
	// EventDefaultChanged signals a new system default device.
	EventDefaultChanged
)

func (t EventType) String() string {
	switch t {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventChanged:
		return "changed"
	case EventDefaultChanged:
		return "default_changed"
	}
	return "unknown"
}

// Event is one device-change notification. The Device descriptor is a copy
// owned by the event; subscribers may retain it.
type Event struct {
	Type   EventType
	Device Device
}
