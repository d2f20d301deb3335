package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	const chunkSize = 32 * 1024
	buf := make([]byte, chunkSize)
	for i := range buf {
		buf[i] = 0x42
	}

	remaining := size
	for remaining > 0 {
		toWrite := int64(chunkSize)
		if remaining < toWrite {
			toWrite = remaining
		}
		if _, err := f.Write(buf[:toWrite]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		remaining -= toWrite
	}
}

// WriteTextFile writes content to path, creating parent directories.
func WriteTextFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteMessyBatch populates dir with a small mixed batch: documents, images,
// code, a resume, and one pair of content-identical files. It returns the
// file count written.
func WriteMessyBatch(t testing.TB, dir string) int {
	t.Helper()

	files := map[string]string{
		"report.pdf":       "quarterly numbers and commentary",
		"slides.pptx":      "deck bytes",
		"budget.xlsx":      "spreadsheet bytes",
		"photo.jpg":        "jpeg bytes",
		"banner.png":       "png bytes",
		"clip.mp4":         "video bytes",
		"track.mp3":        "audio bytes",
		"tool.py":          "print('hello')",
		"archive.tar.gz":   "tarball bytes",
		"jane_resume.docx": "resume bytes",
		"notes.txt":        "shared grocery list",
		"notes_copy.txt":   "shared grocery list",
		"mystery.xyz":      "unknown bytes",
	}
	for name, content := range files {
		WriteTextFile(t, filepath.Join(dir, name), content)
	}
	return len(files)
}
