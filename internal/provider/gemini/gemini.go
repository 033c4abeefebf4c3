// Package gemini implements the Provider interface for Google Gemini,
// selectable as an alternative backend to the local Ollama runtime.
package gemini

import (
	"context"
	"sync"

	"google.golang.org/genai"

	provider "fsagent/internal/provider/models"
)

// Provider implements provider.Provider for Google Gemini.
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

// Generate sends the conversation to the Gemini API and returns the
// response turn.
func (p *Provider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	p.mu.RLock()
	model := p.modelName
	tools := p.tools
	p.mu.RUnlock()

	if len(req.Tools) > 0 {
		tools = req.Tools
	}

	contents, systemInstruction := toGeminiContents(req.History)

	config := &genai.GenerateContentConfig{}
	if systemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemInstruction)},
		}
	}
	if len(tools) > 0 {
		config.Tools = toGeminiTools(tools)
	}

	resp, err := p.client.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp, model)
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
