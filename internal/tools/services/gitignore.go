package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"fsagent/internal/tools/models"
)

// ignoreService implements models.IgnoreService on top of go-git's
// gitignore pattern matcher.
type ignoreService struct {
	matcher gitignore.Matcher
}

// NewIgnoreService loads .gitignore from the workspace root and builds a
// matcher. If no .gitignore exists, the returned service never ignores.
func NewIgnoreService(workspaceRoot string, fs models.FileSystem) (models.IgnoreService, error) {
	gitignorePath := filepath.Join(workspaceRoot, ".gitignore")

	if _, err := fs.Stat(gitignorePath); err != nil {
		return &ignoreService{matcher: nil}, nil
	}

	content, err := fs.ReadFile(gitignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return &ignoreService{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore checks if a workspace-relative path matches gitignore patterns.
func (g *ignoreService) ShouldIgnore(relativePath string, isDir bool) bool {
	if g.matcher == nil || relativePath == "" {
		return false
	}
	segments := strings.Split(filepath.ToSlash(relativePath), "/")
	return g.matcher.Match(segments, isDir)
}

// NoOpIgnoreService never ignores anything. Used when gitignore loading fails.
type NoOpIgnoreService struct{}

// ShouldIgnore always returns false.
func (NoOpIgnoreService) ShouldIgnore(string, bool) bool { return false }
