// SPDX-License-Identifier: EPL-2.0

package miniaudio

import (
	"github.com/gen2brain/malgo"

	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/convert"
)

// stream wraps one malgo device. The callback context travels inside this
// struct; no global state is involved in reaching it from the data
// callback.
type stream struct {
	backendName string
	deviceID    string
	config      audio.Config
	deviceType  malgo.DeviceType
	callback    audio.Callback

	device *malgo.Device
	closed bool

	// Scratch buffers sized to the negotiated period. onData reuses them
	// on every invocation; the real-time path performs no allocation as
	// long as the driver honors the period size.
	inScratch  []float32
	outScratch []float32
}

// onData is the malgo data callback, running on the real-time thread. It
// converts the driver's byte buffers to the float32 form, invokes the user
// callback and converts the rendered output back.
func (s *stream) onData(pOutput, pInput []byte, frameCount uint32) {
	samples := int(frameCount) * int(s.config.Channels)

	var input []float32
	if len(pInput) > 0 {
		if samples > len(s.inScratch) {
			// Driver delivered more than the negotiated period.
			samples = len(s.inScratch)
		}
		n, _ := convert.DecodeSamples(audio.FormatF32LE, pInput, s.inScratch[:samples])
		input = s.inScratch[:n]
	}

	var output []float32
	if len(pOutput) > 0 {
		if samples > len(s.outScratch) {
			samples = len(s.outScratch)
		}
		output = s.outScratch[:samples]
	}

	s.callback(input, output, samples/int(s.config.Channels))

	if output != nil {
		_, _ = convert.EncodeSamples(audio.FormatF32LE, output, pOutput)
	}
}

// Start hands the stream to malgo's real-time loop.
func (s *stream) Start() error {
	if err := s.device.Start(); err != nil {
		return audio.NewError(audio.ErrStreamStartFailed, err.Error()).
			WithBackend(s.backendName).WithDevice(s.deviceID)
	}
	return nil
}

// Stop halts the real-time loop. malgo's Stop blocks until the driver has
// quiesced the data callback, so when it returns without error the
// callback is guaranteed not to fire again.
func (s *stream) Stop() error {
	if err := s.device.Stop(); err != nil {
		return audio.NewError(audio.ErrStreamStopFailed, err.Error()).
			WithBackend(s.backendName).WithDevice(s.deviceID)
	}
	return nil
}

// Close releases the malgo device exactly once.
func (s *stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.device.Uninit()
	return nil
}
