// Package oracle talks to the external text-generation service. Callers get an
// opaque Completion and must go through DecodeJSON to read structured output, so
// malformed replies surface as errs.ErrMalformedOracleResponse instead of panics
// or zero values.
package oracle

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"ticket-booking/internal/pkg/errs"
)

type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Prompt is one role-scoped request: Instruction becomes the system message and
// Payload the user message.
type Prompt struct {
	Instruction string
	Payload     string
	Format      Format
}

type Completion struct {
	text string
}

func NewCompletion(text string) Completion {
	return Completion{text: text}
}

func (c Completion) Text() string {
	return c.text
}

// Client fails only with errs.ErrOracleUnavailable.
type Client interface {
	Complete(ctx context.Context, p Prompt) (Completion, error)
}

// DecodeJSON unmarshals the completion into v. Models often wrap JSON in a
// Markdown fence, which is stripped first.
func DecodeJSON(c Completion, v any) error {
	body := stripCodeFence(c.text)
	if body == "" {
		return errs.Wrap(errs.ErrMalformedOracleResponse, "empty completion")
	}
	dec := json.NewDecoder(strings.NewReader(body))
	if err := dec.Decode(v); err != nil {
		return errs.Mark(errs.Wrap(err, "decode completion"), errs.ErrMalformedOracleResponse)
	}
	// anything but EOF after the first value is trailing data
	if _, err := dec.Token(); !errs.Is(err, io.EOF) {
		return errs.Wrap(errs.ErrMalformedOracleResponse, "trailing data after JSON object")
	}
	return nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the info string, e.g. ```json
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
