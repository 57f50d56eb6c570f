// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Public operations wrap one of these in an *Error;
// callers match with errors.Is.
var (
	// Initialization failures.
	ErrBackendInit   = errors.New("backend initialization failed")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Device failures.
	ErrDeviceNotFound     = errors.New("device not found")
	ErrDeviceAccessDenied = errors.New("device access denied")
	ErrDeviceBusy         = errors.New("device busy")
	ErrDeviceUnavailable  = errors.New("device unavailable")
	ErrDeviceUnsupported  = errors.New("device does not support configuration")

	// Stream failures.
	ErrStreamCreationFailed   = errors.New("stream creation failed")
	ErrStreamStartFailed      = errors.New("stream start failed")
	ErrStreamStopFailed       = errors.New("stream stop failed")
	ErrInvalidStateTransition = errors.New("invalid stream state transition")

	// Format failures.
	ErrUnsupportedFormat       = errors.New("unsupported sample format")
	ErrUnsupportedSampleRate   = errors.New("unsupported sample rate")
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")
	ErrInvalidAudioData        = errors.New("invalid audio data")

	// Resource failures.
	ErrInvalidBufferSize = errors.New("invalid buffer size")

	// Mode failures.
	ErrExclusiveUnavailable = errors.New("exclusive mode unavailable")
)

// Error attaches context to a sentinel kind: a human-readable message plus
// the backend name, device id and native error code where known. It is
// built incrementally with the With* methods and treated as immutable once
// returned to a caller.
type Error struct {
	kind     error
	message  string
	backend  string
	deviceID string
	code     int32
	hasCode  bool
}

// NewError wraps a sentinel kind with a message.
func NewError(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

// WithBackend returns a copy of e naming the backend the failure came from.
func (e *Error) WithBackend(name string) *Error {
	c := *e
	c.backend = name
	return &c
}

// WithDevice returns a copy of e naming the device involved.
func (e *Error) WithDevice(id string) *Error {
	c := *e
	c.deviceID = id
	return &c
}

// WithCode returns a copy of e carrying a native error code.
func (e *Error) WithCode(code int32) *Error {
	c := *e
	c.code = code
	c.hasCode = true
	return &c
}

// Backend returns the backend name, or "" when unknown.
func (e *Error) Backend() string { return e.backend }

// DeviceID returns the device id, or "" when unknown.
func (e *Error) DeviceID() string { return e.deviceID }

// Code returns the native error code and whether one was recorded.
func (e *Error) Code() (int32, bool) { return e.code, e.hasCode }

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.kind.Error())
	if e.message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.message)
	}
	if e.backend != "" {
		fmt.Fprintf(&sb, " (backend %s)", e.backend)
	}
	if e.deviceID != "" {
		fmt.Fprintf(&sb, " (device %s)", e.deviceID)
	}
	if e.hasCode {
		fmt.Fprintf(&sb, " (code %d)", e.code)
	}
	return sb.String()
}

func (e *Error) Unwrap() error { return e.kind }
