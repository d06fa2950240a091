package llm

import (
	"context"
	"errors"
)

// CompletionRequest is one call to the external completion API. The
// response is always requested as a JSON object.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
}

// Completer is the interface the pipeline depends on. Implementations
// must honor ctx cancellation and must not retry on failure.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) ([]byte, error)
}

// Upstream failure kinds. Callers match with errors.Is to choose an
// API error code.
var (
	ErrInvalidKey        = errors.New("completion api key missing or rejected")
	ErrQuotaExceeded     = errors.New("completion api quota exceeded")
	ErrProviderError     = errors.New("completion api provider error")
	ErrMalformedResponse = errors.New("completion api returned malformed response")
	ErrEmptyResponse     = errors.New("completion api returned empty response")
)
