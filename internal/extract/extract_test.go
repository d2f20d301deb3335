package extract_test

import (
	"io"
	"strings"
	"testing"

	"sortd/internal/batch"
	"sortd/internal/extract"
)

func memFile(name, content string) batch.File {
	return batch.File{
		Name: name,
		Size: int64(len(content)),
		Opener: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestTextSnifferReturnsPlainText(t *testing.T) {
	sniffer := extract.NewTextSniffer(0)
	text, err := sniffer.ExtractText(memFile("notes.txt", "plain text notes about nothing in particular"))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(text, "plain text notes") {
		t.Fatalf("expected extracted text, got %q", text)
	}
}

func TestTextSnifferSkipsBinary(t *testing.T) {
	sniffer := extract.NewTextSniffer(0)
	// PNG magic bytes followed by junk.
	binary := "\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR"
	text, err := sniffer.ExtractText(memFile("image.png", binary))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "" {
		t.Fatalf("expected no text for binary content, got %q", text)
	}
}

func TestTextSnifferBoundsRead(t *testing.T) {
	sniffer := extract.NewTextSniffer(16)
	long := strings.Repeat("abcd ", 100)
	text, err := sniffer.ExtractText(memFile("big.txt", long))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if len(text) > 16 {
		t.Fatalf("read %d bytes, want at most 16", len(text))
	}
}

func TestTextSnifferEmptyFile(t *testing.T) {
	sniffer := extract.NewTextSniffer(0)
	text, err := sniffer.ExtractText(memFile("empty.txt", ""))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty result, got %q", text)
	}
}

func TestDisabledExtractor(t *testing.T) {
	text, err := extract.Disabled{}.ExtractText(memFile("anything.txt", "content"))
	if err != nil || text != "" {
		t.Fatalf("Disabled should return nothing, got %q, %v", text, err)
	}
}
