package organize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sortd/internal/batch"
	"sortd/internal/classify"
)

func writeSource(t *testing.T, dir, name, content string) batch.File {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return batch.File{Name: name, Path: path, Size: int64(len(content))}
}

func TestOrganizeLaysOutCategories(t *testing.T) {
	srcDir := t.TempDir()
	root := t.TempDir()

	placements := map[classify.Category][]batch.File{
		classify.CategoryDocuments: {writeSource(t, srcDir, "report.pdf", "doc body")},
		classify.CategoryImages:    {writeSource(t, srcDir, "photo.jpg", "jpeg body")},
	}

	org := New(root, nil)
	jobDir, err := org.Organize(context.Background(), "job-1", placements)
	if err != nil {
		t.Fatalf("Organize: %v", err)
	}
	if jobDir != filepath.Join(root, "job-1") {
		t.Fatalf("job dir = %q", jobDir)
	}

	for category, files := range placements {
		for _, f := range files {
			dst := filepath.Join(jobDir, category.String(), f.Name)
			got, err := os.ReadFile(dst)
			if err != nil {
				t.Fatalf("organized copy missing: %v", err)
			}
			src, _ := os.ReadFile(f.Path)
			if string(got) != string(src) {
				t.Errorf("%s: content mismatch", dst)
			}
			// Sources must survive untouched.
			if _, err := os.Stat(f.Path); err != nil {
				t.Errorf("source removed: %v", err)
			}
		}
	}
}

func TestOrganizeCollidingBasenames(t *testing.T) {
	srcA := t.TempDir()
	srcB := t.TempDir()
	root := t.TempDir()

	placements := map[classify.Category][]batch.File{
		classify.CategoryDocuments: {
			writeSource(t, srcA, "notes.txt", "from A"),
			writeSource(t, srcB, "notes.txt", "from B"),
		},
	}

	org := New(root, nil)
	jobDir, err := org.Organize(context.Background(), "job-2", placements)
	if err != nil {
		t.Fatalf("Organize: %v", err)
	}

	docDir := filepath.Join(jobDir, "Documents")
	entries, err := os.ReadDir(docDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("organized %d files, want 2 (collision must not overwrite)", len(entries))
	}
}

func TestOrganizeMissingRoot(t *testing.T) {
	org := New("", nil)
	if _, err := org.Organize(context.Background(), "job-3", nil); err == nil {
		t.Fatal("expected error for unset destination root")
	}
}

func TestOrganizeCanceledContext(t *testing.T) {
	srcDir := t.TempDir()
	root := t.TempDir()
	placements := map[classify.Category][]batch.File{
		classify.CategoryDocuments: {writeSource(t, srcDir, "a.txt", "x")},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	org := New(root, nil)
	if _, err := org.Organize(ctx, "job-4", placements); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
