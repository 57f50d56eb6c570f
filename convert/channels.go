// SPDX-License-Identifier: EPL-2.0

package convert

// Mapper remaps interleaved frames from one channel layout to another.
// The mapping is deterministic and frame-by-frame:
//
//   - mono to stereo duplicates the sample to both channels
//   - stereo to mono averages the two channels
//   - stereo to 5.1 maps the front pair directly, center = average of the
//     pair, LFE and the rear pair as documented on Map
//   - equal layouts copy
//   - anything else uses a generic rule: output channels below the input
//     count copy directly; mono input duplicates everywhere; otherwise the
//     first input channel is copied
type Mapper struct {
	in  int
	out int
}

// NewMapper creates a mapper from in input channels to out output channels.
func NewMapper(in, out int) (*Mapper, error) {
	if in <= 0 || out <= 0 {
		return nil, ErrInvalidChannels
	}
	return &Mapper{in: in, out: out}, nil
}

// InputChannels returns the input channel count.
func (m *Mapper) InputChannels() int { return m.in }

// OutputChannels returns the output channel count.
func (m *Mapper) OutputChannels() int { return m.out }

// Map converts min(len(src)/in, len(dst)/out) frames and returns the frame
// count. Both slices must hold whole frames; otherwise ErrInvalidSliceSize
// is returned. For stereo to 5.1 the output channel order is front-left,
// front-right, center, LFE, rear-left, rear-right: the fronts copy, center
// averages them, LFE is silence, and the rears carry 0.7 of the
// corresponding front channel.
func (m *Mapper) Map(src, dst []float32) (int, error) {
	if len(src)%m.in != 0 || len(dst)%m.out != 0 {
		return 0, ErrInvalidSliceSize
	}

	frames := len(src) / m.in
	if f := len(dst) / m.out; f < frames {
		frames = f
	}

	switch {
	case m.in == m.out:
		copy(dst[:frames*m.out], src[:frames*m.in])

	case m.in == 1 && m.out == 2:
		for f := 0; f < frames; f++ {
			s := src[f]
			dst[2*f] = s
			dst[2*f+1] = s
		}

	case m.in == 2 && m.out == 1:
		for f := 0; f < frames; f++ {
			dst[f] = (src[2*f] + src[2*f+1]) * 0.5
		}

	case m.in == 2 && m.out == 6:
		for f := 0; f < frames; f++ {
			l := src[2*f]
			r := src[2*f+1]
			o := dst[6*f:]
			o[0] = l
			o[1] = r
			o[2] = (l + r) * 0.5
			o[3] = 0
			o[4] = l * 0.7
			o[5] = r * 0.7
		}

	default:
		for f := 0; f < frames; f++ {
			in := src[f*m.in:]
			out := dst[f*m.out : f*m.out+m.out]
			for c := range out {
				if c < m.in {
					out[c] = in[c]
				} else {
					// Mono input duplicates everywhere; otherwise the
					// first input channel fills the extra outputs.
					out[c] = in[0]
				}
			}
		}
	}

	return frames, nil
}
