package models

import "encoding/json"

// Conversation roles. The history is append-only during one invocation and
// discarded when the process exits.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents a single turn in the conversation history.
// Exactly one of Content, ToolCalls or ToolResult is meaningful per turn.
type Message struct {
	Role    string
	Content string

	// For assistant turns requesting tool invocations
	ToolCalls []ToolCall

	// For tool-result turns
	ToolResult *ToolResult
}

// ToolCall represents a structured tool invocation emitted by the model.
// Args is untrusted external input and is validated before dispatch.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolResult represents the outcome of a tool execution.
type ToolResult struct {
	ID        string // matches ToolCall.ID when the backend provides one
	Name      string
	Content   string // serialized success payload
	Error     string // non-empty when the tool failed
	ErrorKind string // stable failure classifier, e.g. "traversal"
}

// Payload returns the wire content for this result's conversation turn:
// the success payload as-is, or a serialized error object the model can
// react to.
func (r *ToolResult) Payload() string {
	if r.Error == "" {
		return r.Content
	}
	out, err := json.Marshal(map[string]any{
		"status": "error",
		"error": map[string]string{
			"kind":    r.ErrorKind,
			"message": r.Error,
		},
	})
	if err != nil {
		return `{"status":"error"}`
	}
	return string(out)
}
