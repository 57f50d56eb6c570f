// SPDX-License-Identifier: EPL-2.0

// Package wav is the file boundary of the audio core: it loads canonical
// PCM WAV files into audio.Buffer values and writes buffers back out.
//
// # Decoding
//
// Decode accepts only the canonical layout: a 44-byte header with the
// RIFF/WAVE magic, a "fmt " chunk declaring PCM (format tag 1) with 16-bit
// samples, and the "data" chunk immediately after. Anything else is
// rejected before any sample data is read:
//
//	f, _ := os.Open("tone.wav")
//	buf, err := wav.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) { ... }
//
// Samples are converted to the canonical float32 form on load.
//
// # Encoding
//
// Encode writes an audio.Buffer as 16-bit PCM through the go-audio wav
// encoder; Save wraps it with file creation. Float samples are clamped and
// quantized on the way out.
//
//	wav.Save("out.wav", buf)
package wav
