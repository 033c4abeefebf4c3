package models

import "errors"

const (
	// DefaultMaxReadSize is the maximum file size read_file_contents will load (100 KiB)
	DefaultMaxReadSize = 100 * 1024
	// DefaultMaxWriteSize is the maximum content size write_file_contents accepts (1 MiB)
	DefaultMaxWriteSize = 1024 * 1024
	// DefaultBackupDir is the workspace-relative directory holding pre-overwrite copies
	DefaultBackupDir = ".fsagent_backups"
)

var (
	// ErrPathRequired is returned when a request omits a mandatory path
	ErrPathRequired = errors.New("path is required")
)

// ListDirectoryRequest asks for the entries of a directory.
// Path defaults to the workspace root when empty.
type ListDirectoryRequest struct {
	Path           string `json:"path" mapstructure:"path"`
	IncludeIgnored bool   `json:"include_ignored" mapstructure:"include_ignored"`
}

// DirectoryEntry is a single entry in a directory listing.
type DirectoryEntry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
}

// ListDirectoryResponse contains the result of a ListDirectory operation.
type ListDirectoryResponse struct {
	Path    string           `json:"path"`
	Entries []DirectoryEntry `json:"entries"`
}

// ReadFileRequest asks for the text content of a file.
type ReadFileRequest struct {
	Path string `json:"path" mapstructure:"path"`
}

// Validate checks the request shape before the tool runs.
func (r ReadFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

// ReadFileResponse contains the result of a ReadFile operation.
type ReadFileResponse struct {
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	Content string `json:"content"`
}

// WriteFileRequest asks for content to be written to a file.
// Overwriting an existing file requires the explicit Overwrite flag.
type WriteFileRequest struct {
	Path      string `json:"path" mapstructure:"path"`
	Content   string `json:"content" mapstructure:"content"`
	Overwrite bool   `json:"overwrite" mapstructure:"overwrite"`
}

// Validate checks the request shape before the tool runs.
// Empty content is valid; an empty path is not.
func (r WriteFileRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

// WriteFileResponse contains the result of a WriteFile operation.
type WriteFileResponse struct {
	Path         string `json:"path"`
	Operation    string `json:"operation"` // "create" or "overwrite"
	BytesWritten int    `json:"bytes_written"`
	BackupPath   string `json:"backup_path,omitempty"`
}
