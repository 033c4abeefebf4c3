package tools

import (
	"os"
	"path"
	"sort"

	"fsagent/internal/tools/models"
	"fsagent/internal/tools/pathutil"
)

// ListDirectory lists the contents of a directory within the workspace.
// An empty path lists the workspace root. Gitignored entries are hidden
// unless the request sets IncludeIgnored.
func ListDirectory(ctx *models.WorkspaceContext, req models.ListDirectoryRequest) (*models.ListDirectoryResponse, error) {
	targetPath := req.Path
	if targetPath == "" {
		targetPath = "."
	}

	abs, rel, err := pathutil.Resolve(ctx, targetPath)
	if err != nil {
		return nil, err
	}

	dirEntries, err := ctx.FS.ReadDir(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.WrapToolError(models.KindNotFound, err, "directory not found: %q", targetPath)
		}
		return nil, models.WrapToolError(models.KindUnexpected, err, "failed to list directory: %q", targetPath)
	}

	entries := make([]models.DirectoryEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		entryRel := path.Join(rel, entry.Name())
		if !req.IncludeIgnored && ctx.Ignore != nil && ctx.Ignore.ShouldIgnore(entryRel, entry.IsDir()) {
			continue
		}

		var size int64
		if info, infoErr := entry.Info(); infoErr == nil {
			size = info.Size()
		}
		entries = append(entries, models.DirectoryEntry{
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
			Size:  size,
		})
	}

	// Directories first, then files, both alphabetically
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	respPath := rel
	if respPath == "" {
		respPath = "."
	}
	return &models.ListDirectoryResponse{
		Path:    respPath,
		Entries: entries,
	}, nil
}
