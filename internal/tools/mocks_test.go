package tools

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"fsagent/internal/tools/models"
)

// mockFileInfo implements os.FileInfo
type mockFileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	isDir bool
}

func (f *mockFileInfo) Name() string       { return f.name }
func (f *mockFileInfo) Size() int64        { return f.size }
func (f *mockFileInfo) Mode() os.FileMode  { return f.mode }
func (f *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (f *mockFileInfo) IsDir() bool        { return f.isDir }
func (f *mockFileInfo) Sys() any           { return nil }

// mockDirEntry implements os.DirEntry
type mockDirEntry struct {
	info *mockFileInfo
}

func (e *mockDirEntry) Name() string               { return e.info.name }
func (e *mockDirEntry) IsDir() bool                { return e.info.isDir }
func (e *mockDirEntry) Type() fs.FileMode          { return e.info.mode.Type() }
func (e *mockDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

// mockFileHandle represents a temp file handle
type mockFileHandle struct {
	fs      *MockFileSystem
	path    string
	content []byte
	closed  bool
}

func (h *mockFileHandle) Write(data []byte) (int, error) {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()

	if err, ok := h.fs.opErrors["Write"]; ok {
		return 0, err
	}
	if h.closed {
		return 0, fmt.Errorf("file is closed")
	}
	h.content = append(h.content, data...)
	return len(data), nil
}

func (h *mockFileHandle) Sync() error {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()

	if err, ok := h.fs.opErrors["Sync"]; ok {
		return err
	}
	if h.closed {
		return fmt.Errorf("file is closed")
	}
	return nil
}

func (h *mockFileHandle) Close() error {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()

	if err, ok := h.fs.opErrors["Close"]; ok {
		return err
	}
	if h.closed {
		return fmt.Errorf("file already closed")
	}
	h.closed = true
	return nil
}

// MockFileSystem implements models.FileSystem with in-memory storage.
// It also records every path it was asked to touch, so tests can assert
// that rejected requests never reached the filesystem.
type MockFileSystem struct {
	mu        sync.RWMutex
	files     map[string][]byte
	fileInfos map[string]*mockFileInfo
	dirs      map[string]bool
	errors    map[string]error
	opErrors  map[string]error
	tempFiles map[string]*mockFileHandle
	touched   []string
	tempSeq   int
}

// NewMockFileSystem creates a new mock filesystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:     make(map[string][]byte),
		fileInfos: make(map[string]*mockFileInfo),
		dirs:      make(map[string]bool),
		errors:    make(map[string]error),
		opErrors:  make(map[string]error),
		tempFiles: make(map[string]*mockFileHandle),
	}
}

// SetError sets an error to return for a specific path
func (f *MockFileSystem) SetError(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[path] = err
}

// SetOperationError sets an error to return for a specific operation.
// Operations: "CreateTemp", "Write", "Sync", "Close", "Rename", "Chmod", "Remove", "MkdirAll"
func (f *MockFileSystem) SetOperationError(operation string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opErrors[operation] = err
}

// CreateFile creates a file with content
func (f *MockFileSystem) CreateFile(path string, content []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = content
	f.fileInfos[path] = &mockFileInfo{
		name: filepath.Base(path),
		size: int64(len(content)),
		mode: 0o644,
	}
}

// SetFileSize overrides a file's reported size without storing the bytes,
// so large-file tests don't need to allocate the content.
func (f *MockFileSystem) SetFileSize(path string, size int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if info, ok := f.fileInfos[path]; ok {
		info.size = size
	} else {
		f.fileInfos[path] = &mockFileInfo{name: filepath.Base(path), size: size, mode: 0o644}
	}
}

// CreateDir creates a directory
func (f *MockFileSystem) CreateDir(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs[path] = true
	f.fileInfos[path] = &mockFileInfo{
		name:  filepath.Base(path),
		mode:  os.ModeDir | 0o755,
		isDir: true,
	}
}

// FileContent returns the stored content for a path
func (f *MockFileSystem) FileContent(path string) ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	content, ok := f.files[path]
	return content, ok
}

// FilesWithPrefix returns stored file paths starting with prefix
func (f *MockFileSystem) FilesWithPrefix(prefix string) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var paths []string
	for p := range f.files {
		if strings.HasPrefix(p, prefix) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// TouchedPaths returns every path passed to a filesystem operation
func (f *MockFileSystem) TouchedPaths() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.touched...)
}

func (f *MockFileSystem) touch(path string) {
	f.touched = append(f.touched, path)
}

func (f *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch(path)

	if err, ok := f.errors[path]; ok {
		return nil, err
	}
	if info, ok := f.fileInfos[path]; ok {
		return info, nil
	}
	return nil, os.ErrNotExist
}

func (f *MockFileSystem) ReadFile(path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch(path)

	if err, ok := f.errors[path]; ok {
		return nil, err
	}
	if content, ok := f.files[path]; ok {
		return content, nil
	}
	return nil, os.ErrNotExist
}

func (f *MockFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch(path)

	if err, ok := f.errors[path]; ok {
		return nil, err
	}
	if !f.dirs[path] {
		return nil, os.ErrNotExist
	}

	var entries []os.DirEntry
	seen := map[string]bool{}
	collect := func(child string, info *mockFileInfo) {
		dir := filepath.Dir(child)
		if dir != path || seen[info.name] {
			return
		}
		seen[info.name] = true
		entries = append(entries, &mockDirEntry{info: info})
	}
	for p, info := range f.fileInfos {
		if p == path {
			continue
		}
		collect(p, info)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (f *MockFileSystem) MkdirAll(path string, _ os.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch(path)

	if err, ok := f.opErrors["MkdirAll"]; ok {
		return err
	}

	cleaned := filepath.Clean(path)
	parts := strings.Split(cleaned, string(filepath.Separator))
	current := ""
	if filepath.IsAbs(cleaned) {
		current = "/"
	}
	for _, part := range parts {
		if part == "" {
			continue
		}
		current = filepath.Join(current, part)
		if !f.dirs[current] {
			f.dirs[current] = true
			f.fileInfos[current] = &mockFileInfo{name: part, mode: os.ModeDir | 0o755, isDir: true}
		}
	}
	return nil
}

func (f *MockFileSystem) CreateTemp(dir, _ string) (string, models.TempFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch(dir)

	if err, ok := f.opErrors["CreateTemp"]; ok {
		return "", nil, err
	}

	f.tempSeq++
	tempPath := filepath.Join(dir, fmt.Sprintf(".tmp-%d", f.tempSeq))
	handle := &mockFileHandle{fs: f, path: tempPath}
	f.tempFiles[tempPath] = handle
	return tempPath, handle, nil
}

func (f *MockFileSystem) Rename(oldPath, newPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch(newPath)

	if err, ok := f.opErrors["Rename"]; ok {
		return err
	}

	if handle, ok := f.tempFiles[oldPath]; ok {
		f.files[newPath] = handle.content
		f.fileInfos[newPath] = &mockFileInfo{
			name: filepath.Base(newPath),
			size: int64(len(handle.content)),
			mode: 0o644,
		}
		delete(f.tempFiles, oldPath)
		return nil
	}

	if content, ok := f.files[oldPath]; ok {
		f.files[newPath] = content
		f.fileInfos[newPath] = f.fileInfos[oldPath]
		delete(f.files, oldPath)
		delete(f.fileInfos, oldPath)
		return nil
	}
	return os.ErrNotExist
}

func (f *MockFileSystem) Remove(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.opErrors["Remove"]; ok {
		return err
	}

	if _, ok := f.tempFiles[path]; ok {
		delete(f.tempFiles, path)
		return nil
	}
	if _, ok := f.files[path]; ok {
		delete(f.files, path)
		delete(f.fileInfos, path)
		return nil
	}
	return os.ErrNotExist
}

func (f *MockFileSystem) Chmod(path string, mode os.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.opErrors["Chmod"]; ok {
		return err
	}

	if info, ok := f.fileInfos[path]; ok {
		info.mode = mode
		return nil
	}
	return os.ErrNotExist
}

// TempFilePaths returns the paths of temp files never cleaned up
func (f *MockFileSystem) TempFilePaths() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	paths := make([]string, 0, len(f.tempFiles))
	for path := range f.tempFiles {
		paths = append(paths, path)
	}
	return paths
}

// mockIgnoreService ignores an explicit set of workspace-relative paths
type mockIgnoreService struct {
	ignored map[string]bool
}

func newMockIgnoreService(paths ...string) *mockIgnoreService {
	m := &mockIgnoreService{ignored: make(map[string]bool)}
	for _, p := range paths {
		m.ignored[p] = true
	}
	return m
}

func (m *mockIgnoreService) ShouldIgnore(relativePath string, _ bool) bool {
	return m.ignored[relativePath]
}
