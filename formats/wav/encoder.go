// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/convert"
)

// Encode writes buf as a 16-bit PCM WAV stream. Samples are clamped to
// [-1, 1] and quantized; the quantization loss is inherent to the format.
func Encode(ws io.WriteSeeker, buf *audio.Buffer) error {
	enc := gowav.NewEncoder(ws, int(buf.SampleRate), 16, int(buf.Channels), 1)

	data := make([]int, len(buf.Data))
	for i, s := range buf.Data {
		data[i] = int(convert.Float32ToS16(s))
	}

	ib := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(buf.Channels),
			SampleRate:  int(buf.SampleRate),
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Save writes buf to a WAV file at path.
func Save(path string, buf *audio.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, buf); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
