package batch

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File describes one input file. Descriptors are immutable once created and
// owned by the batch for the duration of a job. Content is read lazily
// through Open so that building a batch never touches file bytes.
type File struct {
	// Name is the logical file name (base name, no directory).
	Name string
	// Path locates the content on disk. Empty when Opener is set.
	Path string
	// Size is the file size in bytes.
	Size int64
	// Opener overrides content access; used by tests and non-disk sources.
	Opener func() (io.ReadCloser, error)
}

// Open returns a reader over the file content.
func (f File) Open() (io.ReadCloser, error) {
	if f.Opener != nil {
		return f.Opener()
	}
	return os.Open(f.Path)
}

// Ext returns the lowercased extension including the dot, resolving compound
// suffixes through their outermost recognized part (".tar.gz" yields ".gz"
// via filepath.Ext; callers that care about compound suffixes use ExtChain).
func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// ExtChain returns the candidate suffixes of the name from most to least
// specific: for "backup.tar.gz" it yields [".tar.gz", ".gz"]. All entries
// are lowercased.
func (f File) ExtChain() []string {
	name := strings.ToLower(f.Name)
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return nil
	}
	stem := strings.TrimSuffix(name, ext)
	if inner := filepath.Ext(stem); inner != "" && inner != stem {
		return []string{inner + ext, ext}
	}
	return []string{ext}
}

// Chunk is an ordered, contiguous, non-overlapping slice of the input batch.
// The union of a job's chunks equals the batch exactly once.
type Chunk struct {
	// Index is the chunk's position in the partition, doubling as the
	// worker identifier in per-worker metrics.
	Index int
	// Files holds the descriptors in original batch order.
	Files []File
}

// Len returns the number of files in the chunk.
func (c Chunk) Len() int { return len(c.Files) }
