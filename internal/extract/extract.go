// Package extract provides the best-effort content-extraction capability
// consumed by classification refinement. Extraction sniffs the MIME type of
// a bounded prefix of the file and returns text only when the content is
// textual; everything else yields an empty result. Failures here are always
// recoverable by callers (fail-open).
package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"sortd/internal/batch"
)

// Extractor pulls optional text content out of a file descriptor.
type Extractor interface {
	// ExtractText returns extracted text, or "" when the file has no usable
	// text content. An error means the file could not be read at all.
	ExtractText(f batch.File) (string, error)
}

// TextSniffer extracts text from plain-text content using MIME detection on
// a bounded prefix. Binary formats (PDF, Office, media) yield no text: the
// heavy extraction backends for those formats are external collaborators.
type TextSniffer struct {
	// MaxBytes bounds how much of each file is read. Zero means 64 KiB.
	MaxBytes int
}

// NewTextSniffer returns a sniffer bounded to maxBytes per file.
func NewTextSniffer(maxBytes int) *TextSniffer {
	return &TextSniffer{MaxBytes: maxBytes}
}

// ExtractText implements Extractor.
func (s *TextSniffer) ExtractText(f batch.File) (string, error) {
	limit := s.MaxBytes
	if limit <= 0 {
		limit = 64 * 1024
	}

	reader, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(reader, int64(limit))); err != nil {
		return "", fmt.Errorf("read %s: %w", f.Name, err)
	}
	if buf.Len() == 0 {
		return "", nil
	}

	detected := mimetype.Detect(buf.Bytes())
	for mime := detected; mime != nil; mime = mime.Parent() {
		if strings.HasPrefix(mime.String(), "text/") {
			return buf.String(), nil
		}
	}
	return "", nil
}

// Disabled is an Extractor that always reports no content. Used when the
// extraction pass is turned off in configuration.
type Disabled struct{}

// ExtractText implements Extractor.
func (Disabled) ExtractText(batch.File) (string, error) { return "", nil }
