package ollama

import (
	orchmodels "fsagent/internal/orchestrator/models"
	provider "fsagent/internal/provider/models"
)

// Ollama wire types for JSON serialization (native /api/chat format).

// ChatRequest is the request body for /api/chat.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Tools    []ToolSchema  `json:"tools,omitempty"`
	Stream   bool          `json:"stream"`
}

// ChatMessage is a single conversation turn on the wire.
type ChatMessage struct {
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	ToolName  string         `json:"tool_name,omitempty"`
	ToolCalls []WireToolCall `json:"tool_calls,omitempty"`
}

// WireToolCall is a tool invocation request emitted by the model.
type WireToolCall struct {
	Function WireFunction `json:"function"`
}

// WireFunction carries the tool name and its structured arguments.
type WireFunction struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ToolSchema advertises one tool to the model.
type ToolSchema struct {
	Type     string         `json:"type"`
	Function FunctionSchema `json:"function"`
}

// FunctionSchema is the function half of a ToolSchema.
type FunctionSchema struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	Parameters  *provider.ParameterSchema `json:"parameters,omitempty"`
}

// ChatResponse is the non-streaming response body from /api/chat.
type ChatResponse struct {
	Model           string      `json:"model"`
	Message         ChatMessage `json:"message"`
	Done            bool        `json:"done"`
	PromptEvalCount int         `json:"prompt_eval_count"`
	EvalCount       int         `json:"eval_count"`
}

// toChatMessages converts the conversation history to wire messages.
// Each tool result becomes its own role:"tool" turn.
func toChatMessages(history []orchmodels.Message) []ChatMessage {
	messages := make([]ChatMessage, 0, len(history))
	for _, m := range history {
		switch {
		case m.ToolResult != nil:
			messages = append(messages, ChatMessage{
				Role:     "tool",
				Content:  m.ToolResult.Payload(),
				ToolName: m.ToolResult.Name,
			})
		case len(m.ToolCalls) > 0:
			calls := make([]WireToolCall, 0, len(m.ToolCalls))
			for _, tc := range m.ToolCalls {
				calls = append(calls, WireToolCall{
					Function: WireFunction{Name: tc.Name, Arguments: tc.Args},
				})
			}
			messages = append(messages, ChatMessage{
				Role:      m.Role,
				Content:   m.Content,
				ToolCalls: calls,
			})
		default:
			messages = append(messages, ChatMessage{Role: m.Role, Content: m.Content})
		}
	}
	return messages
}

// toToolSchemas converts tool definitions to the wire schema array.
func toToolSchemas(defs []provider.ToolDefinition) []ToolSchema {
	if len(defs) == 0 {
		return nil
	}
	schemas := make([]ToolSchema, 0, len(defs))
	for _, def := range defs {
		schemas = append(schemas, ToolSchema{
			Type: "function",
			Function: FunctionSchema{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.Parameters,
			},
		})
	}
	return schemas
}

// fromChatResponse converts a wire response into a GenerateResponse.
func fromChatResponse(resp *ChatResponse, model string) *provider.GenerateResponse {
	out := &provider.GenerateResponse{
		Metadata: provider.ResponseMetadata{
			PromptTokens:     resp.PromptEvalCount,
			CompletionTokens: resp.EvalCount,
			TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
			ModelUsed:        model,
		},
	}

	if len(resp.Message.ToolCalls) > 0 {
		toolCalls := make([]orchmodels.ToolCall, 0, len(resp.Message.ToolCalls))
		for _, tc := range resp.Message.ToolCalls {
			toolCalls = append(toolCalls, orchmodels.ToolCall{
				Name: tc.Function.Name,
				Args: tc.Function.Arguments,
			})
		}
		out.Content = provider.ResponseContent{
			Type:      provider.ResponseTypeToolCall,
			ToolCalls: toolCalls,
		}
		return out
	}

	out.Content = provider.ResponseContent{
		Type: provider.ResponseTypeText,
		Text: resp.Message.Content,
	}
	return out
}
