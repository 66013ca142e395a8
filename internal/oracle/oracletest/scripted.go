// Package oracletest provides a deterministic oracle.Client for tests.
package oracletest

import (
	"context"
	"sync"

	"ticket-booking/internal/oracle"
	"ticket-booking/internal/pkg/errs"
)

// Reply is one scripted answer: either Text or Err.
type Reply struct {
	Text string
	Err  error
}

func Text(s string) Reply { return Reply{Text: s} }

func Unavailable() Reply {
	return Reply{Err: errs.Wrap(errs.ErrOracleUnavailable, "scripted outage")}
}

// Scripted answers prompts in order and records what it was asked. Once the
// script runs out it reports the oracle as unavailable.
type Scripted struct {
	mu      sync.Mutex
	replies []Reply
	prompts []oracle.Prompt
}

var _ oracle.Client = (*Scripted)(nil)

func NewScripted(replies ...Reply) *Scripted {
	return &Scripted{replies: replies}
}

func (s *Scripted) Complete(ctx context.Context, p oracle.Prompt) (oracle.Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, p)
	if err := ctx.Err(); err != nil {
		return oracle.Completion{}, errs.Mark(err, errs.ErrOracleUnavailable)
	}
	if len(s.replies) == 0 {
		return oracle.Completion{}, errs.Wrap(errs.ErrOracleUnavailable, "script exhausted")
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	if r.Err != nil {
		return oracle.Completion{}, r.Err
	}
	return oracle.NewCompletion(r.Text), nil
}

func (s *Scripted) Prompts() []oracle.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]oracle.Prompt(nil), s.prompts...)
}
