package organize

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sortd/internal/batch"
	"sortd/internal/classify"
	"sortd/internal/fileutil"
	"sortd/internal/logging"
)

// Organizer copies analyzed files into per-category directories under Root.
// Each job gets its own subdirectory so repeated runs never interleave.
type Organizer struct {
	root   string
	logger *slog.Logger
}

func New(root string, logger *slog.Logger) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{root: root, logger: logging.NewComponentLogger(logger, "organizer")}
}

// Organize lays the batch out as <root>/<job-id>/<Category>/<name>. Sources
// are copied, never moved: the input batch stays untouched. The first error
// aborts the job-level layout and is reported to the caller; partially
// copied output under the job directory is left in place for inspection.
func (o *Organizer) Organize(ctx context.Context, jobID string, placements map[classify.Category][]batch.File) (string, error) {
	if o.root == "" {
		return "", fmt.Errorf("organize: no destination root configured")
	}
	jobDir := filepath.Join(o.root, jobID)
	if err := os.MkdirAll(jobDir, 0o755); err != nil {
		return "", fmt.Errorf("organize: create job directory: %w", err)
	}

	copied := 0
	for _, category := range classify.Categories() {
		files := placements[category]
		if len(files) == 0 {
			continue
		}
		catDir := filepath.Join(jobDir, category.String())
		if err := os.MkdirAll(catDir, 0o755); err != nil {
			return "", fmt.Errorf("organize: create %s directory: %w", category, err)
		}
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return "", fmt.Errorf("organize: %w", err)
			}
			dst := fileutil.UniquePath(filepath.Join(catDir, filepath.Base(f.Name)))
			if err := copyInto(f, dst); err != nil {
				return "", fmt.Errorf("organize %s: %w", f.Name, err)
			}
			copied++
		}
	}

	o.logger.Info("batch organized",
		logging.String("path", jobDir),
		logging.Int("files", copied))
	return jobDir, nil
}

// copyInto prefers the verified copy for on-disk sources and falls back to a
// plain streamed copy for opener-backed files.
func copyInto(f batch.File, dst string) error {
	if f.Path != "" && f.Opener == nil {
		return fileutil.CopyFileVerified(f.Path, dst)
	}
	return fileutil.CopyBatchFile(f, dst)
}
