package adapter

import (
	"fmt"

	provider "fsagent/internal/provider/models"
)

// Registry holds the fixed set of tools the agent advertises. It is
// assembled once at startup and read-only afterwards: the ordered tool list
// drives the wire-format schema array sent to the model endpoint, and the
// name index drives dispatch.
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

// NewRegistry builds a registry from the given tools, preserving order.
// Duplicate tool names are a construction error.
func NewRegistry(tools ...Tool) (*Registry, error) {
	byName := make(map[string]Tool, len(tools))
	for _, t := range tools {
		if _, exists := byName[t.Name()]; exists {
			return nil, fmt.Errorf("duplicate tool name: %s", t.Name())
		}
		byName[t.Name()] = t
	}
	return &Registry{tools: tools, byName: byName}, nil
}

// Definitions returns the tool definitions in registration order, ready to
// be advertised to the model endpoint.
func (r *Registry) Definitions() []provider.ToolDefinition {
	defs := make([]provider.ToolDefinition, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, t.Definition())
	}
	return defs
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}
