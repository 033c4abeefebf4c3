package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	provider "fsagent/internal/provider/models"
)

// DefaultHost is the standard local Ollama endpoint.
const DefaultHost = "http://localhost:11434"

// Client defines the interface for talking to an Ollama server.
// This abstraction allows for easier testing.
type Client interface {
	// Chat sends a non-streaming chat request and returns the response turn.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// HTTPClient implements Client against a real Ollama server.
type HTTPClient struct {
	host string
	http *http.Client
}

// NewHTTPClient creates an HTTPClient for the given host. The request
// timeout lives here, at the transport boundary, not in the dispatch loop.
func NewHTTPClient(host string, timeout time.Duration) *HTTPClient {
	if host == "" {
		host = DefaultHost
	}
	return &HTTPClient{
		host: strings.TrimSuffix(host, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Chat implements Client.
func (c *HTTPClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &provider.ProviderError{
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    "failed to marshal chat request",
			Underlying: err,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, &provider.ProviderError{
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    "failed to create chat request",
			Underlying: err,
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &provider.ProviderError{
			Code:       provider.ErrorCodeConnection,
			Message:    fmt.Sprintf("cannot reach Ollama at %s, is the service running?", c.host),
			Underlying: err,
		}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &provider.ProviderError{
			Code:       provider.ErrorCodeConnection,
			Message:    "failed to read chat response",
			Underlying: err,
		}
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, mapHTTPError(httpResp.StatusCode, body)
	}

	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &provider.ProviderError{
			Code:       provider.ErrorCodeEmptyResponse,
			Message:    "failed to decode chat response",
			Underlying: err,
		}
	}
	return &resp, nil
}

// mapHTTPError converts a non-200 Ollama reply into a ProviderError.
func mapHTTPError(status int, body []byte) *provider.ProviderError {
	var apiErr struct {
		Error string `json:"error"`
	}
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		message = apiErr.Error
	}

	code := provider.ErrorCodeInvalidRequest
	switch {
	case status == http.StatusNotFound && strings.Contains(message, "model"):
		code = provider.ErrorCodeInvalidModel
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		code = provider.ErrorCodeAuth
	case status >= 500:
		code = provider.ErrorCodeConnection
	}

	return &provider.ProviderError{
		Code:    code,
		Message: fmt.Sprintf("ollama returned HTTP %d: %s", status, message),
	}
}
