package orchestrator

import (
	"context"
	"fmt"

	"fsagent/internal/orchestrator/adapter"
	"fsagent/internal/orchestrator/models"
	provider "fsagent/internal/provider/models"
	toolmodels "fsagent/internal/tools/models"
	"fsagent/internal/ui"
)

// SystemPrompt is the fixed instruction seeding every conversation.
const SystemPrompt = `You are a helpful AI assistant that can interact with the user's local file system.
You have access to the following tools:
- list_directory: see the files and folders in a directory.
- read_file_contents: read the text content of a specific file.
- write_file_contents: write text content to a file (overwriting requires explicit confirmation).

When asked to read or write a file, provide its path relative to the working directory.
List the directory first if you are unsure of the path.
If a tool reports an error, explain the problem to the user instead of retrying blindly.
Be concise and clear in your answers.`

// DefaultMaxRounds bounds the number of model round-trips per invocation so
// a model that keeps requesting tools cannot loop forever.
const DefaultMaxRounds = 20

// Orchestrator manages the dispatch loop: it relays the conversation to the
// model endpoint, executes requested tools via the registry, and feeds
// results back until the model produces a plain answer.
type Orchestrator struct {
	provider  provider.Provider
	registry  *adapter.Registry
	notifier  ui.Notifier
	maxRounds int
	history   []models.Message
}

// New creates a new Orchestrator. maxRounds <= 0 selects DefaultMaxRounds.
func New(p provider.Provider, registry *adapter.Registry, notifier ui.Notifier, maxRounds int) *Orchestrator {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	if notifier == nil {
		notifier = ui.NoopNotifier{}
	}
	return &Orchestrator{
		provider:  p,
		registry:  registry,
		notifier:  notifier,
		maxRounds: maxRounds,
	}
}

// History returns the conversation accumulated by the last Run.
func (o *Orchestrator) History() []models.Message {
	return o.history
}

// Run executes the dispatch loop for a single user prompt and returns the
// model's final text answer. Tool failures never terminate the loop; only
// provider faults and the round limit do.
func (o *Orchestrator) Run(ctx context.Context, prompt string) (string, error) {
	o.history = []models.Message{
		{Role: models.RoleSystem, Content: SystemPrompt},
		{Role: models.RoleUser, Content: prompt},
	}

	defs := o.registry.Definitions()
	if err := o.provider.DefineTools(ctx, defs); err != nil {
		return "", fmt.Errorf("failed to register tools with provider: %w", err)
	}

	for range o.maxRounds {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		o.notifier.WriteStatus("thinking", fmt.Sprintf("Waiting for %s...", o.provider.GetModel()))

		response, err := o.provider.Generate(ctx, &provider.GenerateRequest{
			History: o.history,
			Tools:   defs,
		})
		if err != nil {
			return "", fmt.Errorf("provider error: %w", err)
		}

		switch response.Content.Type {
		case provider.ResponseTypeToolCall:
			if len(response.Content.ToolCalls) == 0 {
				o.history = append(o.history, models.Message{
					Role:    models.RoleSystem,
					Content: "Error: empty tool call list",
				})
				continue
			}

			o.history = append(o.history, models.Message{
				Role:      models.RoleAssistant,
				ToolCalls: response.Content.ToolCalls,
			})

			// Execute every call in the order the model emitted them,
			// appending each result as its own tool-result turn.
			for _, toolCall := range response.Content.ToolCalls {
				result := o.executeToolCall(ctx, toolCall)
				o.history = append(o.history, models.Message{
					Role:       models.RoleTool,
					ToolResult: &result,
				})
			}

		case provider.ResponseTypeText:
			o.history = append(o.history, models.Message{
				Role:    models.RoleAssistant,
				Content: response.Content.Text,
			})
			return response.Content.Text, nil

		case provider.ResponseTypeRefusal:
			o.notifier.WriteStatus("error", "Model refused to generate")
			o.history = append(o.history, models.Message{
				Role:    models.RoleSystem,
				Content: fmt.Sprintf("Model refused: %s", response.Content.RefusalReason),
			})

		default:
			o.history = append(o.history, models.Message{
				Role:    models.RoleSystem,
				Content: fmt.Sprintf("Error: unknown response type %q", response.Content.Type),
			})
		}
	}

	return "", fmt.Errorf("max rounds (%d) reached without a final answer", o.maxRounds)
}

// executeToolCall executes a single tool call and returns its result.
// Failures are captured in the result, never raised.
func (o *Orchestrator) executeToolCall(ctx context.Context, toolCall models.ToolCall) models.ToolResult {
	tool, exists := o.registry.Lookup(toolCall.Name)
	if !exists {
		return models.ToolResult{
			ID:        toolCall.ID,
			Name:      toolCall.Name,
			Error:     fmt.Sprintf("unknown tool %q", toolCall.Name),
			ErrorKind: string(toolmodels.KindUnknownTool),
		}
	}

	o.notifier.WriteStatus("executing", fmt.Sprintf("Running %s...", toolCall.Name))

	content, err := tool.Execute(ctx, toolCall.Args)
	if err != nil {
		return models.ToolResult{
			ID:        toolCall.ID,
			Name:      toolCall.Name,
			Error:     err.Error(),
			ErrorKind: string(toolmodels.KindOf(err)),
		}
	}

	return models.ToolResult{
		ID:      toolCall.ID,
		Name:    toolCall.Name,
		Content: content,
	}
}
