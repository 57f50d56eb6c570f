// SPDX-License-Identifier: EPL-2.0

// Package ring provides a lock-free single-producer single-consumer ring
// buffer for moving samples (or any element type) between a real-time
// audio thread and application code.
//
// # Concurrency Contract
//
// Exactly one goroutine may write and exactly one goroutine may read, and
// the two may do so concurrently without locks. Any other pattern (two
// writers, two readers) is unsupported. The write index is mutated only by
// the producer and the read index only by the consumer; each side observes
// the other's index through atomic loads, so a consumer that sees an
// updated write index is guaranteed to see the stored elements as well.
//
// # Capacity
//
// The requested capacity is rounded up to the next power of two and one
// slot is always kept empty to distinguish a full buffer from an empty one
// using only the two indices. A buffer created with New(5) therefore
// allocates 8 slots and holds at most 7 elements.
//
// # Overrun and Underrun
//
// A full buffer on write and an empty buffer on read are expected, frequent
// states in streaming, not failures. Write and WriteSlice never block: they
// report how much was accepted and latch a sticky overrun flag when data
// did not fit. Read and ReadSlice never block either and latch an underrun
// flag when less data was delivered than asked for. The flags are
// observability signals, inspected and cleared by the control side:
//
//	rb, _ := ring.New[float32](4096)
//
//	// producer goroutine
//	rb.WriteSlice(samples)
//
//	// real-time consumer
//	n := rb.ReadSlice(out)
//	audio.Silence(out[n:])
package ring
