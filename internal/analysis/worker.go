package analysis

import (
	"context"
	"log/slog"
	"time"

	"sortd/internal/batch"
	"sortd/internal/classify"
	"sortd/internal/dedupe"
	"sortd/internal/extract"
	"sortd/internal/logging"
)

// ChunkResult is the complete output of one worker unit over one chunk.
// Workers never share these; the coordinator merges them after collection.
type ChunkResult struct {
	Chunk        int
	Processed    int
	Readable     int
	Counts       map[classify.Category]int
	Files        map[classify.Category][]FileEntry
	Placements   map[classify.Category][]batch.File
	Fingerprints *dedupe.Index
	Errors       []FileError
	Duration     time.Duration

	// Failed marks a chunk whose worker panicked. A failed chunk
	// contributes zero files to the merged report.
	Failed bool
}

func newChunkResult(index int) ChunkResult {
	return ChunkResult{
		Chunk:        index,
		Counts:       make(map[classify.Category]int),
		Files:        make(map[classify.Category][]FileEntry),
		Placements:   make(map[classify.Category][]batch.File),
		Fingerprints: dedupe.NewIndex(),
	}
}

// worker is a single isolated analysis unit. It accumulates only into the
// ChunkResult it returns, so any number of workers can run concurrently
// without synchronization.
type worker struct {
	extractor extract.Extractor
	logger    *slog.Logger
}

// process analyzes every file in the chunk: classify by extension, refine
// by content where the extractor allows, and fingerprint for duplicate
// detection. A file that cannot be read keeps its extension-based category
// and is counted, but is flagged and excluded from duplicate analysis.
// Cancellation stops the loop early; the coordinator discards the partial
// result of an abandoned chunk.
func (w *worker) process(ctx context.Context, chunk batch.Chunk) ChunkResult {
	start := time.Now()
	res := newChunkResult(chunk.Index)

	for _, f := range chunk.Files {
		if ctx.Err() != nil {
			break
		}
		w.analyzeFile(f, &res)
	}

	res.Duration = time.Since(start)
	return res
}

func (w *worker) analyzeFile(f batch.File, res *ChunkResult) {
	category := classify.Classify(f)

	fp, err := dedupe.Fingerprint(f)
	if err != nil {
		w.logger.Debug("file unreadable, keeping extension category",
			logging.String(logging.FieldFile, f.Name),
			logging.Error(err))
		res.Errors = append(res.Errors, FileError{Name: f.Name, Error: err.Error()})
	} else {
		res.Readable++
		res.Fingerprints.Add(fp, dedupe.Member{Name: f.Name, Size: f.Size})

		// Content refinement is best effort and only ever upgrades the
		// vague categories; extraction failures fall back silently.
		if category == classify.CategoryDocuments || category == classify.CategoryOthers {
			if text, terr := w.extractor.ExtractText(f); terr == nil {
				category = classify.Refine(category, f.Name, text)
			}
		}
	}

	res.Processed++
	res.Counts[category]++
	res.Files[category] = append(res.Files[category], FileEntry{Name: f.Name, Size: f.Size})
	res.Placements[category] = append(res.Placements[category], f)
}
