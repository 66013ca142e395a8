package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/pkg/errs"
)

var _ Client = (*OpenAI)(nil)

// OpenAI speaks the Chat Completions wire format, so it also works against
// compatible gateways (Azure OpenAI, OpenRouter, vLLM, Ollama).
type OpenAI struct {
	httpClient *http.Client
	cfg        config.OracleConfig
}

func NewOpenAI(cfg config.OracleConfig, httpClient *http.Client) *OpenAI {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &OpenAI{httpClient: httpClient, cfg: cfg}
}

// ProviderError is a non-2xx reply from the completion endpoint.
type ProviderError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("oracle: HTTP %d: %s: %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("oracle: HTTP %d: %s", e.StatusCode, e.Message)
}

func (o *OpenAI) Complete(ctx context.Context, p Prompt) (Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(o.buildRequest(p))
	if err != nil {
		return Completion{}, errs.Mark(errs.Wrap(err, "marshal completion request"), errs.ErrOracleUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint(), bytes.NewReader(body))
	if err != nil {
		return Completion{}, errs.Mark(errs.Wrap(err, "create completion request"), errs.ErrOracleUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")
	if o.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return Completion{}, errs.Mark(errs.Wrap(err, "send completion request"), errs.ErrOracleUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Completion{}, errs.Mark(readProviderError(resp), errs.ErrOracleUnavailable)
	}

	var wire chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return Completion{}, errs.Mark(errs.Wrap(err, "decode completion response"), errs.ErrOracleUnavailable)
	}
	if len(wire.Choices) == 0 {
		return Completion{}, errs.Wrap(errs.ErrOracleUnavailable, "completion has no choices")
	}
	return NewCompletion(wire.Choices[0].Message.Content), nil
}

func (o *OpenAI) endpoint() string {
	return strings.TrimSuffix(o.cfg.BaseURL, "/") + "/chat/completions"
}

func (o *OpenAI) buildRequest(p Prompt) chatRequest {
	req := chatRequest{
		Model:       o.cfg.Model,
		Temperature: o.cfg.Temperature,
	}
	if p.Instruction != "" {
		req.Messages = append(req.Messages, chatMessage{Role: "system", Content: p.Instruction})
	}
	req.Messages = append(req.Messages, chatMessage{Role: "user", Content: p.Payload})
	if p.Format == FormatJSON {
		req.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	return req
}

func readProviderError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var wireErr struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &wireErr) == nil && wireErr.Error.Message != "" {
		return &ProviderError{StatusCode: resp.StatusCode, Type: wireErr.Error.Type, Message: wireErr.Error.Message}
	}
	return &ProviderError{StatusCode: resp.StatusCode, Message: string(body)}
}

// --- Chat Completions wire types ---

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}
