package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts the AI gateway used for document synthesis.
type Client interface {
	Complete(ctx context.Context, input CompletionInput) (string, error)
}

// CompletionInput captures one completion request.
type CompletionInput struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

var (
	// ErrConfiguration signals a missing API credential. It is checked at
	// call time so handlers can surface a non-retriable operator message.
	ErrConfiguration = errors.New("AI API key not configured")

	// ErrMalformedResponse signals a gateway response without the expected
	// completion text field.
	ErrMalformedResponse = errors.New("malformed AI gateway response")
)

// UpstreamError carries the HTTP status of a non-success gateway response.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai gateway status %d: %s", e.Status, e.Body)
}

// PlaceholderClient is a stub implementation for wiring without a provider.
type PlaceholderClient struct{}

// Complete returns ErrConfiguration.
func (PlaceholderClient) Complete(ctx context.Context, input CompletionInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrConfiguration
}
