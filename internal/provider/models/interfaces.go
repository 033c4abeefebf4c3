package models

import "context"

// Provider defines the interface for LLM backends. The dispatch loop depends
// only on this request/response contract, not on any particular transport.
type Provider interface {
	// Generate sends the full conversation to the model and returns one
	// response turn: plain text, tool calls, or a refusal.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// DefineTools registers tool definitions for native tool calling.
	// Must be called before Generate when tools should be advertised.
	DefineTools(ctx context.Context, tools []ToolDefinition) error

	// GetModel returns the currently active model name.
	GetModel() string

	// SetModel changes the active model at runtime.
	SetModel(model string) error
}
