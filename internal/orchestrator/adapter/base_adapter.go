package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"

	provider "fsagent/internal/provider/models"
	toolmodels "fsagent/internal/tools/models"
)

// Validator is implemented by request types that support validation.
type Validator interface {
	Validate() error
}

// ToolExecutor is a tool function with typed request/response.
type ToolExecutor[Req, Resp any] func(ctx *toolmodels.WorkspaceContext, req Req) (Resp, error)

// BaseAdapter bridges a typed tool function to the Tool interface. It
// centralizes argument decoding (mapstructure), request validation,
// execution and response marshaling, so individual adapters are plain
// constructor calls.
type BaseAdapter[Req, Resp any] struct {
	name        string
	description string
	definition  provider.ToolDefinition
	wCtx        *toolmodels.WorkspaceContext
	executor    ToolExecutor[Req, Resp]
}

// NewBaseAdapter creates a base adapter for a typed tool function.
func NewBaseAdapter[Req, Resp any](
	name string,
	description string,
	paramSchema *provider.ParameterSchema,
	wCtx *toolmodels.WorkspaceContext,
	executor ToolExecutor[Req, Resp],
) *BaseAdapter[Req, Resp] {
	return &BaseAdapter[Req, Resp]{
		name:        name,
		description: description,
		definition: provider.ToolDefinition{
			Name:        name,
			Description: description,
			Parameters:  paramSchema,
		},
		wCtx:     wCtx,
		executor: executor,
	}
}

// Name implements Tool.
func (b *BaseAdapter[Req, Resp]) Name() string {
	return b.name
}

// Description implements Tool.
func (b *BaseAdapter[Req, Resp]) Description() string {
	return b.description
}

// Definition implements Tool.
func (b *BaseAdapter[Req, Resp]) Definition() provider.ToolDefinition {
	return b.definition
}

// Execute implements Tool. The args map is untrusted model output: it is
// decoded into the typed request and validated before the tool function
// runs, regardless of the schema advertised to the endpoint.
func (b *BaseAdapter[Req, Resp]) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req Req
	if err := mapstructure.Decode(args, &req); err != nil {
		return "", fmt.Errorf("invalid arguments for %s: %w", b.name, err)
	}

	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", fmt.Errorf("%s validation failed: %w", b.name, err)
		}
	}

	resp, err := b.executor(b.wCtx, req)
	if err != nil {
		return "", err
	}

	bytes, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s response: %w", b.name, err)
	}
	return string(bytes), nil
}
