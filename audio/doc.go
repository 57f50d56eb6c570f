// SPDX-License-Identifier: EPL-2.0

// Package audio defines the shared data model of the audio core.
//
// This package contains the types every other package in the module speaks:
//   - SampleFormat, the closed set of PCM sample encodings
//   - Config, the immutable stream configuration
//   - Buffer, owned interleaved float32 sample storage
//   - Callback, the real-time processing function signature
//   - the error taxonomy used across the public boundary
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate processing.
// SampleFormat names the on-the-wire encodings that devices actually use;
// the convert package translates between them and the float32 form.
//
// # Stream Configuration
//
// A Config describes what the application wants from a stream:
//
//	cfg := audio.Config{
//	    SampleRate: 48000,
//	    Channels:   2,
//	    BufferSize: 480, // frames per callback period
//	    Mode:       audio.ModeShared,
//	}
//
// A Config is validated against device capabilities when a stream is bound
// and must not change afterwards.
//
// # The Real-Time Callback
//
// Callback is invoked from the backend's audio thread once per period. It
// must complete in bounded time, must not allocate, must not block on a
// lock shared with non-real-time code, and must fully populate the output
// slice. A callback that has nothing to play writes silence explicitly:
//
//	func render(input, output []float32, frames int) {
//	    audio.Silence(output)
//	}
//
// # Error Handling
//
// Failure kinds are sentinel errors (ErrDeviceNotFound, ErrDeviceBusy, and
// so on). Operations that can say more wrap a sentinel in an *Error carrying
// a message plus optional backend name, device id and native error code:
//
//	if errors.Is(err, audio.ErrDeviceBusy) {
//	    // another process holds the device
//	}
//
// An *Error is built incrementally with WithBackend, WithDevice and WithCode
// and is treated as immutable once returned to a caller.
package audio
