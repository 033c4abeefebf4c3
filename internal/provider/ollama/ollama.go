// Package ollama implements the Provider interface against a locally
// hosted Ollama runtime.
package ollama

import (
	"context"
	"sync"

	provider "fsagent/internal/provider/models"
)

// Provider implements provider.Provider for Ollama.
type Provider struct {
	client    Client
	mu        sync.RWMutex
	modelName string
	tools     []provider.ToolDefinition
}

// New creates a new Provider with the specified client and model.
func New(client Client, modelName string) *Provider {
	return &Provider{
		client:    client,
		modelName: modelName,
	}
}

// Generate sends the conversation to the Ollama chat endpoint and returns
// the response turn.
func (p *Provider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	p.mu.RLock()
	model := p.modelName
	tools := p.tools
	p.mu.RUnlock()

	if len(req.Tools) > 0 {
		tools = req.Tools
	}

	chatReq := &ChatRequest{
		Model:    model,
		Messages: toChatMessages(req.History),
		Tools:    toToolSchemas(tools),
		Stream:   false,
	}

	resp, err := p.client.Chat(ctx, chatReq)
	if err != nil {
		return nil, err
	}

	return fromChatResponse(resp, model), nil
}

// DefineTools registers tool definitions for native tool calling.
func (p *Provider) DefineTools(_ context.Context, tools []provider.ToolDefinition) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tools = tools
	return nil
}

// GetModel returns the currently active model name.
func (p *Provider) GetModel() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modelName
}

// SetModel changes the active model at runtime.
func (p *Provider) SetModel(model string) error {
	if model == "" {
		return provider.ErrInvalidModel
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modelName = model
	return nil
}
