package adapter

import (
	provider "fsagent/internal/provider/models"
	"fsagent/internal/tools"
	toolmodels "fsagent/internal/tools/models"
)

// This file consolidates all tool adapters using the BaseAdapter pattern.
// Each adapter is a constructor call instead of a full type definition.

// NewListDirectory creates a list_directory adapter
func NewListDirectory(wCtx *toolmodels.WorkspaceContext) Tool {
	return NewBaseAdapter(
		"list_directory",
		"Lists the files and folders in a directory. Defaults to the workspace root when no path is given.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"path": {
					Type:        "string",
					Description: "Directory path (relative to the workspace root)",
				},
				"include_ignored": {
					Type:        "boolean",
					Description: "Include gitignored entries in the listing",
				},
			},
		},
		wCtx,
		tools.ListDirectory,
	)
}

// NewReadFile creates a read_file_contents adapter
func NewReadFile(wCtx *toolmodels.WorkspaceContext) Tool {
	return NewBaseAdapter(
		"read_file_contents",
		"Reads and returns the text content of a file.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"path": {
					Type:        "string",
					Description: "Path to the file (relative to the workspace root)",
				},
			},
			Required: []string{"path"},
		},
		wCtx,
		tools.ReadFile,
	)
}

// NewWriteFile creates a write_file_contents adapter
func NewWriteFile(wCtx *toolmodels.WorkspaceContext) Tool {
	return NewBaseAdapter(
		"write_file_contents",
		"Writes text content to a file. Overwriting an existing file requires overwrite=true and creates a backup first.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"path": {
					Type:        "string",
					Description: "Path to the file (relative to the workspace root)",
				},
				"content": {
					Type:        "string",
					Description: "File content",
				},
				"overwrite": {
					Type:        "boolean",
					Description: "Must be true to replace an existing file",
				},
			},
			Required: []string{"path", "content"},
		},
		wCtx,
		tools.WriteFile,
	)
}
