// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/convert"
)

// Decode reads a canonical PCM WAV stream into an audio.Buffer. The
// header is validated before any sample data is touched: RIFF/WAVE magic,
// "fmt " chunk at the canonical offset, PCM format tag with 16-bit
// samples, and the "data" chunk directly after.
func Decode(r io.Reader) (*audio.Buffer, error) {
	// Minimal WAV header parse: RIFF/WAVE + fmt/data chunks
	header := make([]byte, 44)

	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	// Parse fmt chunk at 12.., assuming canonical layout
	if !bytes.HasPrefix(header[12:16], []byte("fmt ")) {
		return nil, ErrUnsupportedLayout
	}

	audioFormat := binary.LittleEndian.Uint16(header[20:22])
	channels := binary.LittleEndian.Uint16(header[22:24])
	sampleRate := binary.LittleEndian.Uint32(header[24:28])
	bitsPerSample := binary.LittleEndian.Uint16(header[34:36])

	if audioFormat != 1 || bitsPerSample != 16 {
		return nil, ErrOnlyPCM16Supported
	}
	if channels == 0 || sampleRate == 0 {
		return nil, ErrUnsupportedLayout
	}
	// Expect "data" directly after fmt, the 44-byte canonical header.
	if !bytes.HasPrefix(header[36:40], []byte("data")) {
		return nil, ErrUnsupportedChunks
	}

	dataSize := binary.LittleEndian.Uint32(header[40:44])

	raw, err := io.ReadAll(io.LimitReader(r, int64(dataSize)))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	// Drop a trailing partial sample rather than failing the whole file.
	raw = raw[:len(raw)-len(raw)%2]

	data := make([]float32, len(raw)/2)
	if _, err := convert.DecodeSamples(audio.FormatS16LE, raw, data); err != nil {
		return nil, audio.NewError(audio.ErrInvalidAudioData, err.Error())
	}

	return &audio.Buffer{
		Data:       data,
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}
