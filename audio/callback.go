// SPDX-License-Identifier: EPL-2.0

package audio

// Callback is invoked from the backend's real-time audio thread once per
// period. input holds frames captured from the device (nil for output-only
// streams), output must be fully populated with frames to play (empty for
// capture-only streams), and frames is the period length in frames. Both
// slices are interleaved and hold frames × channels samples.
//
// The callback must complete in bounded time, must not allocate, and must
// not block on a lock also taken by non-real-time code. Leaving output
// partially written is a defect; use Silence when there is nothing to play.
type Callback func(input []float32, output []float32, frames int)

// Silence zeroes out every sample in out.
func Silence(out []float32) {
	for i := range out {
		out[i] = 0
	}
}
