package models

import (
	"io"
	"os"
)

// FileSystem abstracts the filesystem operations the tools need.
// Production code uses the OS implementation; tests inject mocks.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]os.DirEntry, error)
	MkdirAll(path string, perm os.FileMode) error
	CreateTemp(dir, pattern string) (string, TempFile, error)
	Rename(oldPath, newPath string) error
	Remove(path string) error
	Chmod(path string, perm os.FileMode) error
}

// TempFile is the minimal handle writeFileAtomic needs from CreateTemp.
type TempFile interface {
	io.Writer
	Sync() error
	Close() error
}

// IgnoreService reports whether a workspace-relative path is gitignored.
type IgnoreService interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}
