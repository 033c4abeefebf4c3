package services

import (
	"os"

	"fsagent/internal/tools/models"
)

// OSFileSystem implements models.FileSystem using the local OS primitives.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (*OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (*OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (*OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (*OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (*OSFileSystem) CreateTemp(dir, pattern string) (string, models.TempFile, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, err
	}
	return f.Name(), f, nil
}

func (*OSFileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (*OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (*OSFileSystem) Chmod(path string, perm os.FileMode) error {
	return os.Chmod(path, perm)
}
