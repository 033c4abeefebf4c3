package pathutil

import (
	"testing"

	"fsagent/internal/tools/models"
)

func testContext() *models.WorkspaceContext {
	return &models.WorkspaceContext{
		WorkspaceRoot:     "/workspace",
		ForbiddenPrefixes: []string{"/etc", "/usr", "/var"},
	}
}

func TestResolve(t *testing.T) {
	t.Run("relative path resolution", func(t *testing.T) {
		abs, rel, err := Resolve(testContext(), "notes/todo.txt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if abs != "/workspace/notes/todo.txt" {
			t.Errorf("expected absolute path /workspace/notes/todo.txt, got %s", abs)
		}
		if rel != "notes/todo.txt" {
			t.Errorf("expected relative path notes/todo.txt, got %s", rel)
		}
	})

	t.Run("workspace root resolves to empty relative path", func(t *testing.T) {
		abs, rel, err := Resolve(testContext(), ".")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if abs != "/workspace" {
			t.Errorf("expected absolute path /workspace, got %s", abs)
		}
		if rel != "" {
			t.Errorf("expected empty relative path, got %q", rel)
		}
	})

	t.Run("absolute path within workspace", func(t *testing.T) {
		abs, rel, err := Resolve(testContext(), "/workspace/nested/file.txt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if abs != "/workspace/nested/file.txt" {
			t.Errorf("expected absolute path /workspace/nested/file.txt, got %s", abs)
		}
		if rel != "nested/file.txt" {
			t.Errorf("expected relative path nested/file.txt, got %s", rel)
		}
	})

	t.Run("traversal segments rejected", func(t *testing.T) {
		for _, path := range []string{
			"..",
			"../secrets.txt",
			"notes/../../secrets.txt",
			"notes/..",
		} {
			_, _, err := Resolve(testContext(), path)
			if models.KindOf(err) != models.KindTraversal {
				t.Errorf("path %q: expected traversal error, got %v", path, err)
			}
		}
	})

	t.Run("dots inside a name are not traversal", func(t *testing.T) {
		abs, _, err := Resolve(testContext(), "archive..old.txt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if abs != "/workspace/archive..old.txt" {
			t.Errorf("unexpected absolute path %s", abs)
		}
	})

	t.Run("home directory rejected", func(t *testing.T) {
		for _, path := range []string{"~", "~/notes.txt"} {
			_, _, err := Resolve(testContext(), path)
			if models.KindOf(err) != models.KindForbiddenPath {
				t.Errorf("path %q: expected forbidden path error, got %v", path, err)
			}
		}
	})

	t.Run("forbidden system prefixes rejected", func(t *testing.T) {
		for _, path := range []string{"/etc/passwd", "/etc", "/usr/bin/sh", "/var/log/syslog"} {
			_, _, err := Resolve(testContext(), path)
			if models.KindOf(err) != models.KindForbiddenPath {
				t.Errorf("path %q: expected forbidden path error, got %v", path, err)
			}
		}
	})

	t.Run("prefix match is segment-aware", func(t *testing.T) {
		ctx := testContext()
		ctx.WorkspaceRoot = "/etcetera"
		if _, _, err := Resolve(ctx, "/etcetera/file.txt"); err != nil {
			t.Errorf("expected /etcetera to pass the /etc prefix check, got %v", err)
		}
	})

	t.Run("absolute path outside workspace rejected", func(t *testing.T) {
		_, _, err := Resolve(testContext(), "/home/user/file.txt")
		if models.KindOf(err) != models.KindForbiddenPath {
			t.Errorf("expected forbidden path error, got %v", err)
		}
	})

	t.Run("missing workspace root is an error", func(t *testing.T) {
		_, _, err := Resolve(&models.WorkspaceContext{}, "file.txt")
		if models.KindOf(err) != models.KindUnexpected {
			t.Errorf("expected unexpected error, got %v", err)
		}
	})
}

func TestIsHidden(t *testing.T) {
	cases := map[string]bool{
		".gitignore":       true,
		".env":             true,
		"notes/.hidden.md": true,
		"notes.txt":        false,
		"dir/file.go":      false,
		".":                false,
	}
	for path, want := range cases {
		if got := IsHidden(path); got != want {
			t.Errorf("IsHidden(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestExtensionAllowed(t *testing.T) {
	allowed := []string{".txt", ".md", ".go"}

	cases := map[string]bool{
		"notes.txt":  true,
		"NOTES.TXT":  true,
		"main.go":    true,
		"Makefile":   true, // extensionless is always allowed
		"binary.exe": false,
		"image.png":  false,
	}
	for path, want := range cases {
		if got := ExtensionAllowed(path, allowed); got != want {
			t.Errorf("ExtensionAllowed(%q) = %v, want %v", path, got, want)
		}
	}
}
