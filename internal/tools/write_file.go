package tools

import (
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"fsagent/internal/tools/models"
	"fsagent/internal/tools/pathutil"
)

// WriteFile writes text content to a file within the workspace, creating
// parent directories as needed. Overwriting an existing file requires the
// explicit Overwrite flag and always copies the original into the backup
// directory first; if that copy fails the target is never modified.
func WriteFile(ctx *models.WorkspaceContext, req models.WriteFileRequest) (*models.WriteFileResponse, error) {
	abs, rel, err := pathutil.Resolve(ctx, req.Path)
	if err != nil {
		return nil, err
	}

	// The backup store is system-managed, never a write target.
	if ctx.BackupDir != "" && (rel == ctx.BackupDir || strings.HasPrefix(rel, ctx.BackupDir+"/")) {
		return nil, models.NewToolError(models.KindForbiddenPath,
			"the backup directory is not writable: %q", req.Path)
	}

	base := filepath.Base(abs)
	if pathutil.IsHidden(base) {
		if !slices.Contains(ctx.AllowedHiddenFiles, base) {
			return nil, models.NewToolError(models.KindForbiddenPath,
				"writing hidden files is not allowed: %q", req.Path)
		}
	} else if !pathutil.ExtensionAllowed(base, ctx.AllowedExtensions) {
		return nil, models.NewToolError(models.KindExtensionNotAllowed,
			"file extension %q is not allowed", filepath.Ext(base))
	}

	content := []byte(req.Content)
	if int64(len(content)) > ctx.MaxWriteSize {
		return nil, models.NewToolError(models.KindTooLarge,
			"content is too large (%d bytes, max %d)", len(content), ctx.MaxWriteSize)
	}

	operation := "create"
	backupPath := ""

	info, statErr := ctx.FS.Stat(abs)
	switch {
	case statErr == nil && info.IsDir():
		return nil, models.NewToolError(models.KindUnexpected, "path is a directory: %q", req.Path)
	case statErr == nil && !req.Overwrite:
		return nil, models.NewToolError(models.KindExistsNeedsConfirmation,
			"file %q already exists, set overwrite=true to replace it", req.Path)
	case statErr == nil:
		// The backup must land on disk before the original is touched.
		backupPath, err = createBackup(ctx, abs, base)
		if err != nil {
			return nil, models.WrapToolError(models.KindBackupFailed, err,
				"failed to back up %q, write aborted", req.Path)
		}
		operation = "overwrite"
	case !os.IsNotExist(statErr):
		return nil, models.WrapToolError(models.KindUnexpected, statErr, "failed to stat file: %q", req.Path)
	}

	if err := ctx.FS.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return nil, models.WrapToolError(models.KindWriteFailed, err,
			"failed to create parent directories for %q", req.Path)
	}

	if err := writeFileAtomic(ctx, abs, content, 0644); err != nil {
		return nil, models.WrapToolError(models.KindWriteFailed, err, "failed to write file: %q", req.Path)
	}

	return &models.WriteFileResponse{
		Path:         rel,
		Operation:    operation,
		BytesWritten: len(content),
		BackupPath:   backupPath,
	}, nil
}

// createBackup copies the existing file at abs into the backup directory,
// tagged with a creation timestamp. Returns the workspace-relative backup
// path. The backup directory is system-managed and exempt from the write
// safety policy.
func createBackup(ctx *models.WorkspaceContext, abs, base string) (string, error) {
	original, err := ctx.FS.ReadFile(abs)
	if err != nil {
		return "", err
	}

	backupDirAbs := filepath.Join(ctx.WorkspaceRoot, ctx.BackupDir)
	if err := ctx.FS.MkdirAll(backupDirAbs, 0755); err != nil {
		return "", err
	}

	name := base + ".backup." + time.Now().Format("20060102_150405")
	if err := writeFileAtomic(ctx, filepath.Join(backupDirAbs, name), original, 0644); err != nil {
		return "", err
	}

	return path.Join(filepath.ToSlash(ctx.BackupDir), name), nil
}

// writeFileAtomic writes content via a temp file + rename so a crash
// mid-write never leaves a half-written target. The temp file is created in
// the target's directory to keep the rename atomic.
func writeFileAtomic(ctx *models.WorkspaceContext, abs string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(abs)

	tmpPath, tmpFile, err := ctx.FS.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}

	needsCleanup := true
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
		}
		if needsCleanup {
			_ = ctx.FS.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return err
	}
	tmpFile = nil

	if err := ctx.FS.Rename(tmpPath, abs); err != nil {
		return err
	}
	needsCleanup = false

	return ctx.FS.Chmod(abs, perm)
}
