// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"sync"

	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/backend"
)

// State is a stream lifecycle state.
type State int

const (
	// StateCreated is the state before a backend resource is bound.
	StateCreated State = iota
	// StateBound means the backend resource exists but the real-time
	// loop is not running.
	StateBound
	// StateRunning means the backend invokes the callback each period.
	StateRunning
	// StateDestroyed means the backend resource has been released.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateBound:
		return "bound"
	case StateRunning:
		return "running"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Stream is one live audio stream bound to a backend resource. Lifecycle
// methods are meant for the control goroutine; the real-time thread never
// touches the state field.
type Stream struct {
	mu          sync.Mutex
	state       State
	backendName string
	config      audio.Config
	bs          backend.Stream
}

// BackendName reports which backend the stream is bound to.
func (s *Stream) BackendName() string { return s.backendName }

// Config returns the immutable configuration the stream was created with.
func (s *Stream) Config() audio.Config { return s.config }

// State returns the current lifecycle state.
func (s *Stream) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start transitions Bound → Running and hands control to the backend's
// real-time loop. Starting a stream in any other state fails with
// ErrInvalidStateTransition.
func (s *Stream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateBound {
		return audio.NewError(audio.ErrInvalidStateTransition,
			"cannot start from state "+s.state.String()).WithBackend(s.backendName)
	}

	if err := s.bs.Start(); err != nil {
		return err
	}
	s.state = StateRunning
	return nil
}

// Stop transitions Running → Bound. It returns only after the backend
// confirms the callback is quiesced; if the backend cannot confirm that,
// the error carries ErrStreamStopFailed and the stream stays Running.
func (s *Stream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return audio.NewError(audio.ErrInvalidStateTransition,
			"cannot stop from state "+s.state.String()).WithBackend(s.backendName)
	}

	if err := s.bs.Stop(); err != nil {
		return err
	}
	s.state = StateBound
	return nil
}

// Close releases the backend resource. It is reachable from any state,
// stops a running stream first, and is idempotent: closing a destroyed
// stream does nothing.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateDestroyed {
		return nil
	}

	if s.state == StateRunning {
		if err := s.bs.Stop(); err != nil {
			return err
		}
	}

	err := s.bs.Close()
	s.state = StateDestroyed
	if err != nil {
		return err
	}
	return nil
}
