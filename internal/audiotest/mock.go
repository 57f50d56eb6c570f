// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides shared test helpers: deterministic waveform
// buffers and a scripted fake backend for exercising the chain, the stream
// engine and playback without touching real hardware.
package audiotest

import (
	"math"

	"github.com/ik5/audiocore/audio"
)

// NewWaveformBuffer builds a buffer whose samples come from waveform,
// called with the frame index and channel.
func NewWaveformBuffer(sampleRate uint32, channels uint16, frames int, waveform func(frame, channel int) float32) *audio.Buffer {
	data := make([]float32, frames*int(channels))
	for f := 0; f < frames; f++ {
		for c := 0; c < int(channels); c++ {
			data[f*int(channels)+c] = waveform(f, c)
		}
	}
	return &audio.Buffer{Data: data, SampleRate: sampleRate, Channels: channels}
}

// NewSilentBuffer builds a buffer of silence.
func NewSilentBuffer(sampleRate uint32, channels uint16, frames int) *audio.Buffer {
	return NewWaveformBuffer(sampleRate, channels, frames, func(frame, channel int) float32 {
		return 0
	})
}

// NewSineBuffer builds a buffer holding a sine tone at the given frequency.
func NewSineBuffer(sampleRate uint32, channels uint16, frames int, frequency float64) *audio.Buffer {
	return NewWaveformBuffer(sampleRate, channels, frames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampBuffer builds a buffer whose samples rise linearly from 0, which
// makes off-by-one frame errors visible in assertions.
func NewRampBuffer(sampleRate uint32, channels uint16, frames int, step float32) *audio.Buffer {
	return NewWaveformBuffer(sampleRate, channels, frames, func(frame, channel int) float32 {
		return float32(frame) * step
	})
}
