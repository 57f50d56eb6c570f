// SPDX-License-Identifier: EPL-2.0

// Package backend defines the native-driver abstraction and the fallback
// chain that selects a working driver at initialization time.
//
// # The Backend Interface
//
// A Backend wraps one native audio integration behind a small closed
// capability set: initialize, enumerate devices, open streams, tear down.
// Streams opened from a backend expose start and stop plus idempotent
// teardown. The interface replaces any notion of an untyped driver handle;
// there is no downcasting anywhere in the stream path.
//
// # The Fallback Chain
//
// A Chain holds candidate backends in strict priority order: the
// platform-preferred native backend first, then secondary backends, then
// the silent backend, which never fails. Select probes each candidate once
// and binds the first whose Init succeeds. A probe failure is recovered
// locally; the next candidate is tried transparently and the caller never
// sees it. Only failures of the chosen backend during later operation
// (a busy device at stream-open time, for example) surface to the caller.
//
//	chain := backend.NewChain(miniaudio.New(), backend.NewSilent())
//	b, err := chain.Select()
//
// # The Silent Backend
//
// Silent is a no-op fallback that initializes unconditionally, reports a
// single output-only device, and opens streams whose Start and Stop do
// nothing. It exists so that audio-optional applications keep working on
// machines with no usable audio hardware.
package backend
