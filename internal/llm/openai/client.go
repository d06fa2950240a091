package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitalis-health/labparse/internal/llm"
)

// Complete implements llm.Completer using text-only chat/completions with
// response_format json_object. It never retries; upstream failures are
// classified into the llm error kinds and surfaced immediately.
func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) ([]byte, error) {
	callID := uuid.New().String()
	start := time.Now()

	if c.cfg.APIKey == "" {
		return nil, llm.ErrInvalidKey
	}

	temp := req.Temperature
	if temp == 0 {
		temp = c.cfg.Temperature
	}

	c.log.Info("llm.complete.start",
		"call_id", callID,
		"model", c.cfg.Model,
		"temp", temp,
		"system_len", len(req.System),
		"user_len", len(req.User),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     temp,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": req.System},
			{"role": "user", "content": req.User},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, status, httpErr := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if httpErr != nil {
		kind := classifyStatus(status)
		c.log.Error("llm.complete.http_error",
			"call_id", callID, "status", status, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: %v", kind, httpErr)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.complete.decode_error",
			"call_id", callID, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: decode response: %v", llm.ErrMalformedResponse, err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.complete.no_choices",
			"call_id", callID, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("%w: no choices", llm.ErrMalformedResponse)
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	if content == "" {
		return nil, llm.ErrEmptyResponse
	}

	c.log.Info("llm.complete.ok",
		"call_id", callID,
		"content_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return []byte(content), nil
}

func classifyStatus(status int) error {
	switch {
	case status == 401 || status == 403:
		return llm.ErrInvalidKey
	case status == 429:
		return llm.ErrQuotaExceeded
	case status >= 500:
		return llm.ErrProviderError
	case status == 0:
		// transport-level failure (timeout, connection refused, cancellation)
		return llm.ErrProviderError
	default:
		return llm.ErrProviderError
	}
}
