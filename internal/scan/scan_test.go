package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"sortd/internal/scan"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDirectoryCollectsRegularFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "report.pdf"), "pdf bytes")
	writeFile(t, filepath.Join(dir, "nested", "main.py"), "print('hi')")
	writeFile(t, filepath.Join(dir, ".hidden"), "skip me")
	writeFile(t, filepath.Join(dir, ".git", "config"), "skip subtree")

	files, err := scan.Directory(dir)
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %+v", len(files), files)
	}
	for _, f := range files {
		if f.Size <= 0 {
			t.Fatalf("file %s has no size", f.Name)
		}
		if f.Path == "" {
			t.Fatalf("file %s has no path", f.Name)
		}
	}
}

func TestDirectoryRejectsFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.txt")
	writeFile(t, path, "content")
	if _, err := scan.Directory(path); err == nil {
		t.Fatal("expected error scanning a file path")
	}
}

func TestDirectoryMissingRoot(t *testing.T) {
	if _, err := scan.Directory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDirectoryEmpty(t *testing.T) {
	files, err := scan.Directory(t.TempDir())
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected empty batch, got %d", len(files))
	}
}
