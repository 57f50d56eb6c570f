// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Buffer is owned sample storage: interleaved float32 samples in [-1, 1]
// together with their rate and channel layout. A Buffer is produced by a
// loader or by the conversion pipeline and belongs to whoever created it.
type Buffer struct {
	Data       []float32
	SampleRate uint32
	Channels   uint16
}

// Frames returns the number of whole frames the buffer holds.
func (b *Buffer) Frames() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Data) / int(b.Channels)
}

// Duration returns the playback length of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate == 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}
