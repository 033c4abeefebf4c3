package tools

import (
	"bytes"
	"os"
	"unicode/utf8"

	"fsagent/internal/tools/models"
	"fsagent/internal/tools/pathutil"
)

// ReadFile reads the text content of a file within the workspace.
// The size ceiling is enforced on file metadata before any bytes are read,
// and content must be valid UTF-8 text.
func ReadFile(ctx *models.WorkspaceContext, req models.ReadFileRequest) (*models.ReadFileResponse, error) {
	abs, rel, err := pathutil.Resolve(ctx, req.Path)
	if err != nil {
		return nil, err
	}

	info, err := ctx.FS.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.WrapToolError(models.KindNotFound, err, "file not found: %q", req.Path)
		}
		return nil, models.WrapToolError(models.KindUnexpected, err, "failed to stat file: %q", req.Path)
	}
	if info.IsDir() {
		return nil, models.NewToolError(models.KindUnexpected, "path is a directory, not a file: %q", req.Path)
	}
	if info.Size() > ctx.MaxReadSize {
		return nil, models.NewToolError(models.KindTooLarge,
			"file is too large (%d bytes, max %d)", info.Size(), ctx.MaxReadSize)
	}

	content, err := ctx.FS.ReadFile(abs)
	if err != nil {
		return nil, models.WrapToolError(models.KindUnexpected, err, "failed to read file: %q", req.Path)
	}

	if !utf8.Valid(content) || bytes.IndexByte(content, 0) >= 0 {
		return nil, models.NewToolError(models.KindNotText,
			"file is not valid UTF-8 text, it may be binary: %q", req.Path)
	}

	return &models.ReadFileResponse{
		Path:    rel,
		Size:    info.Size(),
		Content: string(content),
	}, nil
}
