// SPDX-License-Identifier: EPL-2.0

// Package stream owns the stream lifecycle. An Engine creates streams by
// asking the backend chain for a working backend; a Stream wraps the
// backend resource behind an explicit state machine:
//
//	Created → Bound → Running → Bound (stop) → Destroyed
//
// Destroyed is reachable from every state and teardown is idempotent:
// closing a stream twice is a no-op, not an error. Illegal transitions
// (starting a running stream, stopping a bound one) fail with
// ErrInvalidStateTransition.
//
// Stop is safe to call from the control goroutine while the backend's
// real-time loop is running; it does not return until the backend confirms
// the callback cannot fire again. There is no preemption of an in-flight
// callback; cancellation is cooperative.
//
//	engine := stream.NewEngine(chain)
//	s, err := engine.Create("", cfg, render)
//	if err != nil { ... }
//	defer s.Close()
//	s.Start()
package stream
