// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"strings"

	"github.com/ik5/audiocore/audio"
)

// Chain probes candidate backends in strict priority order and yields the
// first that initializes. Place the platform-preferred backend first and
// the silent fallback last; with the silent backend present, selection
// cannot fail.
type Chain struct {
	candidates []Backend
}

// NewChain builds a chain over the candidates in the given order.
func NewChain(candidates ...Backend) *Chain {
	return &Chain{candidates: candidates}
}

// Candidates returns the candidate backends in priority order.
func (c *Chain) Candidates() []Backend {
	return append([]Backend(nil), c.candidates...)
}

// Select initializes candidates one by one and returns the first success.
// A candidate that fails is skipped and never retried within this attempt;
// its failure is recorded but not escalated. Only when every candidate
// fails does Select return ErrBackendInit, with the individual probe
// failures summarized in the message.
func (c *Chain) Select() (Backend, error) {
	var probes []string

	for _, cand := range c.candidates {
		if err := cand.Init(); err != nil {
			probes = append(probes, cand.Name()+": "+err.Error())
			continue
		}
		return cand, nil
	}

	msg := "no backend available"
	if len(probes) > 0 {
		msg = "all candidates failed: " + strings.Join(probes, "; ")
	}
	return nil, audio.NewError(audio.ErrBackendInit, msg)
}
