package dedupe

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"sortd/internal/batch"
)

// Fingerprint computes the content fingerprint of a file by streaming its
// full content through SHA-256. Reading the whole file is the dominant
// per-file cost of analysis and the reason batches are chunked.
func Fingerprint(f batch.File) (string, error) {
	reader, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer reader.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, reader); err != nil {
		return "", fmt.Errorf("read %s: %w", f.Name, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
