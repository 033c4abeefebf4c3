package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fsagent/internal/tools/models"
)

// CanonicaliseRoot canonicalises a workspace root path by making it absolute
// and resolving symlinks. Returns an error if the path doesn't exist or isn't
// a directory.
func CanonicaliseRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace root symlinks: %w", err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("workspace root does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("workspace root is not a directory: %s", resolved)
	}
	return resolved, nil
}

// Resolve validates a model-supplied path against the safety policy and
// anchors it to the workspace root. Checks run in a fixed order, short-
// circuiting on the first failure, and touch no filesystem state:
//
//  1. any ".." segment is a traversal error
//  2. "~" prefixed paths are forbidden
//  3. the resolved absolute path must not fall under a forbidden prefix
//  4. the resolved absolute path must stay inside the workspace root
//
// Returns the absolute path and the workspace-relative path (forward
// slashes, "" for the root itself).
func Resolve(ctx *models.WorkspaceContext, path string) (abs string, rel string, err error) {
	if ctx.WorkspaceRoot == "" {
		return "", "", models.NewToolError(models.KindUnexpected, "workspace root not set")
	}

	if HasTraversal(path) {
		return "", "", models.NewToolError(models.KindTraversal, "path traversal is not allowed: %q", path)
	}

	if strings.HasPrefix(path, "~") {
		return "", "", models.NewToolError(models.KindForbiddenPath, "access to the home directory is denied: %q", path)
	}

	root := filepath.Clean(ctx.WorkspaceRoot)
	if filepath.IsAbs(path) {
		abs = filepath.Clean(path)
	} else {
		abs = filepath.Join(root, path)
	}

	if pre, hit := underForbiddenPrefix(abs, ctx.ForbiddenPrefixes); hit {
		return "", "", models.NewToolError(models.KindForbiddenPath, "access to system directory %s is denied", pre)
	}

	rel, relErr := filepath.Rel(root, abs)
	if relErr != nil || strings.HasPrefix(rel, "..") {
		return "", "", models.NewToolError(models.KindForbiddenPath, "path is outside the workspace: %q", path)
	}

	rel = filepath.ToSlash(rel)
	if rel == "." {
		rel = ""
	}
	return abs, rel, nil
}

// HasTraversal reports whether any segment of the raw input path is "..".
func HasTraversal(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return true
		}
	}
	return false
}

// IsHidden reports whether the final path element is a dotfile.
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return len(base) > 1 && strings.HasPrefix(base, ".") && base != ".."
}

// ExtensionAllowed reports whether the path's extension is in the allow-list.
// Extensionless files are always allowed. Matching is case-insensitive.
func ExtensionAllowed(path string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(filepath.Base(path)))
	if ext == "" {
		return true
	}
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}

func underForbiddenPrefix(abs string, prefixes []string) (string, bool) {
	p := filepath.ToSlash(abs)
	for _, pre := range prefixes {
		pre = strings.TrimSuffix(filepath.ToSlash(pre), "/")
		if pre == "" {
			continue
		}
		if p == pre || strings.HasPrefix(p, pre+"/") {
			return pre, true
		}
	}
	return "", false
}
