// SPDX-License-Identifier: EPL-2.0

package audiocore

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/convert"
	"github.com/ik5/audiocore/ring"
	"github.com/ik5/audiocore/stream"
)

// feedInterval paces the feeder goroutine when the ring is full or when
// it waits for the callback to drain the tail.
const feedInterval = time.Millisecond

// Player plays one decoded buffer through a stream. The buffer is
// converted to the stream's channel count and sample rate up front; the
// real-time callback only moves samples out of a lock-free ring, which a
// feeder goroutine keeps filled.
//
// Call Play once, Wait to block until the last sample was consumed, then
// Close. Close alone stops an unfinished playback.
type Player struct {
	s    *stream.Stream
	ring *ring.Buffer[float32]

	samples []float32
	fed     int
	total   int64

	consumed atomic.Int64

	done  chan struct{}
	stopc chan struct{}

	playOnce  sync.Once
	closeOnce sync.Once
	closeErr  error
}

// NewPlayer opens a stream on the default device with the given
// configuration and prepares buf for playback through it. When the
// buffer's layout differs from cfg the conversion pipeline runs once here,
// before any real-time deadline exists; with conversion disabled in the
// context configuration a mismatched buffer is rejected instead.
func NewPlayer(ctx *Context, cfg audio.Config, buf *audio.Buffer) (*Player, error) {
	if buf == nil || len(buf.Data) == 0 {
		return nil, audio.NewError(audio.ErrInvalidAudioData, "empty buffer")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	samples, err := prepareSamples(buf, cfg, ctx.cfg.Conversion)
	if err != nil {
		return nil, err
	}

	rb, err := ring.New[float32](cfg.BufferSize * int(cfg.Channels) * 4)
	if err != nil {
		return nil, err
	}

	p := &Player{
		ring:    rb,
		samples: samples,
		total:   int64(len(samples)),
		done:    make(chan struct{}),
		stopc:   make(chan struct{}),
	}

	s, err := ctx.OpenStream("", cfg, p.render)
	if err != nil {
		return nil, err
	}
	p.s = s
	return p, nil
}

// prepareSamples runs the conversion pipeline: channel mapping first, then
// sample-rate conversion at the target channel count.
func prepareSamples(buf *audio.Buffer, cfg audio.Config, conversion bool) ([]float32, error) {
	samples := buf.Data

	if buf.Channels != cfg.Channels {
		if !conversion {
			return nil, audio.NewError(audio.ErrUnsupportedChannelCount,
				"conversion disabled and buffer channel count differs from stream")
		}
		mapper, err := convert.NewMapper(int(buf.Channels), int(cfg.Channels))
		if err != nil {
			return nil, err
		}
		mapped := make([]float32, buf.Frames()*int(cfg.Channels))
		if _, err := mapper.Map(samples, mapped); err != nil {
			return nil, err
		}
		samples = mapped
	}

	if buf.SampleRate != cfg.SampleRate {
		if !conversion {
			return nil, audio.NewError(audio.ErrUnsupportedSampleRate,
				"conversion disabled and buffer sample rate differs from stream")
		}
		r, err := convert.NewResampler(buf.SampleRate, cfg.SampleRate, int(cfg.Channels))
		if err != nil {
			return nil, err
		}
		frames := len(samples) / int(cfg.Channels)
		out := make([]float32, r.OutputFrames(frames)*int(cfg.Channels))
		n := r.Convert(samples, out)
		samples = out[:n*int(cfg.Channels)]
	}

	return samples, nil
}

// render is the real-time callback. It never blocks: whatever the ring
// holds goes out, the rest of the period is silence.
func (p *Player) render(_ []float32, out []float32, frames int) {
	n := p.ring.ReadSlice(out)
	if n < len(out) {
		audio.Silence(out[n:])
	}
	if n > 0 {
		p.consumed.Add(int64(n))
	}
}

// Play pre-fills the ring, starts the stream and launches the feeder.
// Subsequent calls are no-ops.
func (p *Player) Play() error {
	var err error
	p.playOnce.Do(func() {
		p.fed = p.ring.WriteSlice(p.samples)
		if err = p.s.Start(); err != nil {
			close(p.done)
			return
		}
		go p.feed()
	})
	return err
}

// feed pushes the remaining samples into the ring as the callback makes
// room, then waits for the callback to consume the tail.
func (p *Player) feed() {
	defer close(p.done)

	for p.fed < len(p.samples) {
		select {
		case <-p.stopc:
			return
		default:
		}
		n := p.ring.WriteSlice(p.samples[p.fed:])
		p.fed += n
		if n == 0 {
			time.Sleep(feedInterval)
		}
	}

	for p.consumed.Load() < p.total {
		select {
		case <-p.stopc:
			return
		case <-time.After(feedInterval):
		}
	}
}

// Wait blocks until the last sample was handed to the backend or the
// player was closed. Valid only after Play.
func (p *Player) Wait() {
	<-p.done
}

// Position returns the number of frames the callback has consumed so far.
func (p *Player) Position() int {
	return int(p.consumed.Load()) / int(p.s.Config().Channels)
}

// Finished reports whether every sample was handed to the backend.
func (p *Player) Finished() bool {
	return p.consumed.Load() >= p.total
}

// Starved reports whether the callback ever drained the ring faster than
// the feeder filled it. The flag also latches once playback runs past the
// end of the buffer.
func (p *Player) Starved() bool {
	return p.ring.HasUnderrun()
}

// Close stops the feeder and the stream and releases the backend
// resource. Closing twice is a no-op.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		close(p.stopc)
		p.closeErr = p.s.Close()
	})
	return p.closeErr
}
