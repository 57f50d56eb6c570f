// SPDX-License-Identifier: EPL-2.0

// Package miniaudio implements the native backend over the miniaudio
// library via github.com/gen2brain/malgo. miniaudio itself picks the
// platform audio service (WASAPI, CoreAudio, ALSA/PulseAudio and others),
// so this single backend covers the supported desktop platforms.
//
// Devices are enumerated per direction with ids of the form "playback-N"
// and "capture-N". Enumeration does not probe full capabilities; devices
// are reported without a capability set and the capability model's
// optimistic default applies.
//
// Streams run with the float32 sample format on the wire. The malgo data
// callback hands raw bytes to and from the driver; this package converts
// them through preallocated scratch buffers and invokes the user callback,
// keeping the real-time path free of allocations.
package miniaudio
