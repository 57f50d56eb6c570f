// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"github.com/ik5/audiocore/audio"
	"github.com/ik5/audiocore/backend"
)

// Engine creates streams. It selects a backend through the fallback chain
// on first use and keeps it for the engine's lifetime.
type Engine struct {
	chain    *backend.Chain
	selected backend.Backend
}

// NewEngine builds an engine over the given chain.
func NewEngine(chain *backend.Chain) *Engine {
	return &Engine{chain: chain}
}

// Backend returns the bound backend, running chain selection on the first
// call.
func (e *Engine) Backend() (backend.Backend, error) {
	if e.selected != nil {
		return e.selected, nil
	}

	b, err := e.chain.Select()
	if err != nil {
		return nil, err
	}
	e.selected = b
	return b, nil
}

// Create validates cfg, opens a backend stream on the given device ("" for
// the backend default) and wraps it in the common Stream record, leaving
// it Bound. Failure to find any working backend, silent fallback included,
// surfaces as ErrStreamCreationFailed; failures of the chosen backend (a
// busy device, an unsupported configuration) pass through as their own
// kinds.
func (e *Engine) Create(deviceID string, cfg audio.Config, cb audio.Callback) (*Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cb == nil {
		return nil, audio.NewError(audio.ErrInvalidConfig, "callback must not be nil")
	}

	b, err := e.Backend()
	if err != nil {
		return nil, audio.NewError(audio.ErrStreamCreationFailed, err.Error())
	}

	s := &Stream{
		state:       StateCreated,
		backendName: b.Name(),
		config:      cfg,
	}

	bs, err := b.OpenStream(deviceID, cfg, cb)
	if err != nil {
		return nil, err
	}

	s.bs = bs
	s.state = StateBound
	return s, nil
}

// Shutdown releases the selected backend, if any. Streams created from
// the engine must be closed first.
func (e *Engine) Shutdown() error {
	if e.selected == nil {
		return nil
	}
	err := e.selected.Uninit()
	e.selected = nil
	return err
}
