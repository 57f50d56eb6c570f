// SPDX-License-Identifier: EPL-2.0

package ring

import "sync/atomic"

// maxCapacity bounds the requested capacity so rounding up to a power of
// two cannot overflow the index arithmetic.
const maxCapacity = 1 << 30

// Buffer is a fixed-capacity lock-free SPSC ring buffer.
// See the package documentation for the concurrency contract.
type Buffer[T any] struct {
	storage []T
	mask    uint32

	// writeIndex is advanced only by the producer, readIndex only by the
	// consumer. Each side loads the other's index atomically.
	writeIndex atomic.Uint32
	readIndex  atomic.Uint32

	overrun  atomic.Bool
	underrun atomic.Bool
}

// New creates a buffer for the requested capacity. The allocation is
// rounded up to the next power of two and one slot is kept empty, so the
// usable capacity is nextPowerOfTwo(capacity) − 1. Returns
// ErrInvalidCapacity for a non-positive or oversized request.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 || capacity > maxCapacity {
		return nil, ErrInvalidCapacity
	}

	size := nextPowerOfTwo(uint32(capacity))
	return &Buffer[T]{
		storage: make([]T, size),
		mask:    size - 1,
	}, nil
}

func nextPowerOfTwo(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v + 1
}

// Capacity returns the number of elements the buffer can hold.
func (b *Buffer[T]) Capacity() int {
	return len(b.storage) - 1
}

// Write stores one element. It returns false without blocking when the
// buffer is full, latching the overrun flag.
func (b *Buffer[T]) Write(item T) bool {
	w := b.writeIndex.Load()
	next := (w + 1) & b.mask
	if next == b.readIndex.Load() {
		b.overrun.Store(true)
		return false
	}

	b.storage[w] = item
	b.writeIndex.Store(next)
	return true
}

// WriteSlice stores as many elements from items as fit, contiguous or
// wrapped, and returns the count actually written. A partial write is not
// an error; it latches the overrun flag.
func (b *Buffer[T]) WriteSlice(items []T) int {
	w := b.writeIndex.Load()
	free := b.Capacity() - b.available(w, b.readIndex.Load())

	n := len(items)
	if n > free {
		n = free
		b.overrun.Store(true)
	}
	if n == 0 {
		return 0
	}

	first := len(b.storage) - int(w)
	if first > n {
		first = n
	}
	copy(b.storage[w:], items[:first])
	copy(b.storage, items[first:n])

	b.writeIndex.Store((w + uint32(n)) & b.mask)
	return n
}

// Read removes and returns the oldest element. The second return value is
// false when the buffer is empty; that latches the underrun flag.
func (b *Buffer[T]) Read() (T, bool) {
	r := b.readIndex.Load()
	if r == b.writeIndex.Load() {
		b.underrun.Store(true)
		var zero T
		return zero, false
	}

	item := b.storage[r]
	b.readIndex.Store((r + 1) & b.mask)
	return item, true
}

// ReadSlice fills dst with up to len(dst) elements in FIFO order and
// returns the count actually read. Delivering fewer elements than asked
// for latches the underrun flag.
func (b *Buffer[T]) ReadSlice(dst []T) int {
	r := b.readIndex.Load()
	avail := b.available(b.writeIndex.Load(), r)

	n := len(dst)
	if n > avail {
		n = avail
		b.underrun.Store(true)
	}
	if n == 0 {
		return 0
	}

	first := len(b.storage) - int(r)
	if first > n {
		first = n
	}
	copy(dst[:first], b.storage[r:])
	copy(dst[first:n], b.storage)

	b.readIndex.Store((r + uint32(n)) & b.mask)
	return n
}

// available computes the element count between the two indices using
// modular arithmetic over the power-of-two size.
func (b *Buffer[T]) available(w, r uint32) int {
	return int((w - r) & b.mask)
}

// ReadAvailable returns how many elements can currently be read.
func (b *Buffer[T]) ReadAvailable() int {
	return b.available(b.writeIndex.Load(), b.readIndex.Load())
}

// WriteAvailable returns how many elements can currently be written.
func (b *Buffer[T]) WriteAvailable() int {
	return b.Capacity() - b.ReadAvailable()
}

// IsEmpty reports whether no element is available to read.
func (b *Buffer[T]) IsEmpty() bool {
	return b.readIndex.Load() == b.writeIndex.Load()
}

// IsFull reports whether no slot is available to write.
func (b *Buffer[T]) IsFull() bool {
	w := b.writeIndex.Load()
	return (w+1)&b.mask == b.readIndex.Load()
}

// HasOverrun reports whether a write has been rejected or truncated since
// the flag was last cleared.
func (b *Buffer[T]) HasOverrun() bool { return b.overrun.Load() }

// HasUnderrun reports whether a read has delivered less than asked for
// since the flag was last cleared.
func (b *Buffer[T]) HasUnderrun() bool { return b.underrun.Load() }

// ClearOverrun resets the overrun flag.
func (b *Buffer[T]) ClearOverrun() { b.overrun.Store(false) }

// ClearUnderrun resets the underrun flag.
func (b *Buffer[T]) ClearUnderrun() { b.underrun.Store(false) }

// Clear resets both indices and both flags. It is only safe when neither
// the producer nor the consumer is operating on the buffer; quiescing them
// is the caller's responsibility.
func (b *Buffer[T]) Clear() {
	b.readIndex.Store(0)
	b.writeIndex.Store(0)
	b.overrun.Store(false)
	b.underrun.Store(false)
}
