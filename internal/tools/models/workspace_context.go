package models

// WorkspaceContext bundles all dependencies for tool operations.
// Each context is independent and does not share state with other contexts.
type WorkspaceContext struct {
	FS            FileSystem
	WorkspaceRoot string // canonical, absolute workspace root

	MaxReadSize  int64
	MaxWriteSize int64

	// Write safety policy
	AllowedExtensions  []string // lowercase, with leading dot; empty extension always allowed
	AllowedHiddenFiles []string // hidden basenames exempt from the hidden-file rule
	ForbiddenPrefixes  []string // absolute system prefixes no tool may touch
	BackupDir          string   // workspace-relative, system-managed

	Ignore IgnoreService // optional, can be nil
}
