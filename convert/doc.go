// SPDX-License-Identifier: EPL-2.0

// Package convert implements the sample conversion pipeline: PCM format
// conversion, channel mapping and sample-rate conversion. The three
// transforms are independent and composable; all of them operate on flat
// interleaved float32 slices.
//
// # Format Conversion
//
// DecodeSamples and EncodeSamples translate between every audio.SampleFormat
// and the canonical float32 representation in [-1, 1]. Integer conversions
// quantize (round trips lose precision by construction) but are monotonic,
// round to the nearest representable value, and clamp out-of-range floats
// to the format's range instead of wrapping:
//
//	pcm := make([]byte, frames*2)
//	convert.EncodeSamples(audio.FormatS16LE, samples, pcm)
//
// # Channel Mapping
//
// A Mapper remaps frames deterministically between channel layouts.
// Mono to stereo duplicates, stereo to mono averages, stereo to 5.1 spreads
// the front pair, and a generic rule covers every other combination:
//
//	m, _ := convert.NewMapper(1, 2)
//	frames, _ := m.Map(mono, stereo)
//
// # Sample-Rate Conversion
//
// Resampler changes the frame rate with linear interpolation, holding a
// fractional read position and one cached edge frame so that consecutive
// input chunks convert seamlessly. Linear interpolation trades quality for
// predictable, allocation-free operation; it is not a sinc resampler and
// does not try to be one.
//
//	r, _ := convert.NewResampler(44100, 48000, 2)
//	out := make([]float32, r.OutputFrames(len(in)/2)*2)
//	produced := r.Convert(in, out)
package convert
