// SPDX-License-Identifier: EPL-2.0

package convert

// Resampler changes the frame rate of interleaved audio using linear
// interpolation. It holds a fractional read position and one cached edge
// frame, so feeding it consecutive chunks of a stream produces seamless
// output across the chunk boundaries.
//
// Linear interpolation is an approximation: it attenuates high frequencies
// and adds some aliasing when downsampling. That quality tradeoff is
// deliberate; the converter never allocates and its cost per output frame
// is constant.
type Resampler struct {
	inRate   uint32
	outRate  uint32
	channels int
	step     float64 // input frames advanced per output frame

	// pos is the fractional read position in the current virtual input
	// (the cached edge frame, when present, is virtual frame zero).
	pos     float64
	edge    []float32
	hasEdge bool
}

// NewResampler creates a converter from inRate to outRate for the given
// interleaved channel count.
func NewResampler(inRate, outRate uint32, channels int) (*Resampler, error) {
	if inRate == 0 || outRate == 0 {
		return nil, ErrInvalidRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	return &Resampler{
		inRate:   inRate,
		outRate:  outRate,
		channels: channels,
		step:     float64(inRate) / float64(outRate),
		edge:     make([]float32, channels),
	}, nil
}

// InputRate returns the source rate in Hz.
func (r *Resampler) InputRate() uint32 { return r.inRate }

// OutputRate returns the destination rate in Hz.
func (r *Resampler) OutputRate() uint32 { return r.outRate }

// Channels returns the interleaved channel count.
func (r *Resampler) Channels() int { return r.channels }

// OutputFrames returns the number of output frames a Convert call can
// produce from inputFrames more input frames, given the current position.
func (r *Resampler) OutputFrames(inputFrames int) int {
	virtual := inputFrames
	if r.hasEdge {
		virtual++
	}
	span := float64(virtual-1) - r.pos
	if span <= 0 {
		return 0
	}
	// Output frames n = 0, 1, ... are produced while pos + n*step stays
	// below the last input frame index.
	n := int(span / r.step)
	if r.pos+float64(n)*r.step < float64(virtual-1) {
		n++
	}
	return n
}

// Convert resamples input into output frame-wise and returns the number of
// output frames produced. Both slices must hold whole frames. Production
// stops when the output is full or when the next required input frame
// index would reach the last input frame; the rule is the same for mono
// and multi-channel data.
//
// Each call consumes the entire input chunk: the final frame is cached so
// the next chunk continues seamlessly. Size output using OutputFrames to
// avoid discarding the tail of a chunk.
func (r *Resampler) Convert(input, output []float32) int {
	if len(input)%r.channels != 0 || len(output)%r.channels != 0 {
		return 0
	}

	inFrames := len(input) / r.channels
	outFrames := len(output) / r.channels
	if inFrames == 0 {
		return 0
	}

	// Virtual input: the cached edge frame (if any) followed by input.
	virtual := inFrames
	if r.hasEdge {
		virtual++
	}

	frame := func(idx int) []float32 {
		if r.hasEdge {
			if idx == 0 {
				return r.edge
			}
			idx--
		}
		return input[idx*r.channels:]
	}

	produced := 0
	for produced < outFrames {
		idx := int(r.pos)
		if idx >= virtual-1 {
			break
		}
		frac := float32(r.pos - float64(idx))

		a := frame(idx)
		b := frame(idx + 1)
		out := output[produced*r.channels:]
		for c := 0; c < r.channels; c++ {
			out[c] = a[c] + (b[c]-a[c])*frac
		}

		produced++
		r.pos += r.step
	}

	// The last input frame becomes virtual frame zero of the next call.
	copy(r.edge, input[(inFrames-1)*r.channels:])
	r.hasEdge = true
	r.pos -= float64(virtual - 1)
	if r.pos < 0 {
		r.pos = 0
	}

	return produced
}

// Reset zeroes the fractional position and the cached edge frame.
func (r *Resampler) Reset() {
	r.pos = 0
	r.hasEdge = false
	for i := range r.edge {
		r.edge[i] = 0
	}
}
