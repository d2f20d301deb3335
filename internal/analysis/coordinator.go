package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"sortd/internal/batch"
	"sortd/internal/classify"
	"sortd/internal/dedupe"
	"sortd/internal/extract"
	"sortd/internal/logging"
)

// Organizer materializes an analysis result on disk, placing every file
// into its category directory. It is an optional collaborator: organize
// failures degrade the report instead of failing the job.
type Organizer interface {
	Organize(ctx context.Context, jobID string, placements map[classify.Category][]batch.File) (string, error)
}

// Options configures a Coordinator. Zero values fall back to the engine
// defaults, so tests can construct a Coordinator from a partial literal.
type Options struct {
	// ParallelThreshold is the batch size at which parallel execution
	// starts paying for its coordination overhead.
	ParallelThreshold int

	// MaxWorkers caps the pool regardless of available cores.
	MaxWorkers int

	// SerialSampleSize is how many files the serial-time probe measures
	// before extrapolating to the full batch.
	SerialSampleSize int

	// JobTimeout bounds a whole job. In-flight chunks are abandoned when
	// it expires and the report is built from completed chunks only.
	JobTimeout time.Duration

	Extractor extract.Extractor
	Organizer Organizer
	Logger    *slog.Logger
}

const (
	defaultParallelThreshold = 100
	defaultMaxWorkers        = 8
	defaultSerialSampleSize  = 25
	defaultJobTimeout        = 5 * time.Minute
)

// Coordinator owns the job lifecycle: partition, dispatch, collect, merge,
// report. It is safe for reuse across jobs; each Run is independent.
type Coordinator struct {
	opts Options
}

func NewCoordinator(opts Options) *Coordinator {
	if opts.ParallelThreshold <= 0 {
		opts.ParallelThreshold = defaultParallelThreshold
	}
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = defaultMaxWorkers
	}
	if opts.SerialSampleSize <= 0 {
		opts.SerialSampleSize = defaultSerialSampleSize
	}
	if opts.JobTimeout <= 0 {
		opts.JobTimeout = defaultJobTimeout
	}
	if opts.Extractor == nil {
		opts.Extractor = extract.Disabled{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	return &Coordinator{opts: opts}
}

// Run analyzes one batch and returns its report. The only fatal conditions
// are an empty batch and a batch in which not one file could be read;
// everything else — unreadable files, failed chunks, an expired timeout —
// degrades the report instead.
func (c *Coordinator) Run(ctx context.Context, files []batch.File, organize bool) (*Report, error) {
	if len(files) == 0 {
		return nil, ErrEmptyBatch
	}

	jobID := uuid.NewString()
	ctx = logging.WithJobID(ctx, jobID)
	logger := c.opts.Logger.With(logging.String(logging.FieldJobID, jobID))
	c.transition(logger, statePending)

	runCtx, cancel := context.WithTimeout(ctx, c.opts.JobTimeout)
	defer cancel()

	strategy := SelectStrategy(len(files), c.opts.ParallelThreshold, c.opts.MaxWorkers)
	logger.Info("job accepted",
		logging.Int("files", len(files)),
		logging.String("mode", string(strategy.Mode)),
		logging.Int("workers", strategy.Workers))

	var (
		merged          mergedResults
		estimatedSerial time.Duration
		abandoned       int
	)
	if strategy.Mode == ModeSerial {
		merged, estimatedSerial = c.runSerial(runCtx, logger, files)
	} else {
		merged, estimatedSerial, abandoned = c.runParallel(runCtx, logger, files, strategy.Workers)
	}
	c.transition(logger, stateMerged)

	if merged.readable == 0 {
		return nil, fmt.Errorf("%w: %d files, %d chunk failures",
			ErrNothingReadable, len(files), merged.failed)
	}

	report := &Report{
		JobID:           jobID,
		Mode:            strategy.Mode,
		WorkersUsed:     strategy.Workers,
		FilesProcessed:  merged.processed,
		CategoryCounts:  merged.counts,
		CategoryFiles:   merged.files,
		DuplicateGroups: merged.fingerprints.Groups(),
		Performance:     computeMetrics(merged.workerTimes, estimatedSerial, merged.processed, strategy.Workers),
		FailedChunks:    merged.failed,
		AbandonedChunks: abandoned,
		FileErrors:      merged.errors,
	}

	if organize {
		c.materialize(runCtx, logger, jobID, merged.placements, report)
	}

	c.transition(logger, stateReported)
	logger.Info("job complete",
		logging.Int("processed", report.FilesProcessed),
		logging.Int("duplicate_groups", len(report.DuplicateGroups)),
		logging.Float64("speedup", report.Performance.Speedup),
		logging.Bool("degraded", report.Degraded()))
	return report, nil
}

// runSerial analyzes the whole batch as a single chunk. The measured time
// is the serial time; no estimation is needed.
func (c *Coordinator) runSerial(ctx context.Context, logger *slog.Logger, files []batch.File) (mergedResults, time.Duration) {
	c.transition(logger, stateDispatched)
	w := &worker{extractor: c.opts.Extractor, logger: logger}
	res := w.process(ctx, batch.Chunk{Index: 0, Files: files})
	if ctx.Err() != nil {
		logger.Warn("job timed out mid-batch, reporting partial results",
			logging.Int("processed", res.Processed),
			logging.Int("total", len(files)))
	}
	c.transition(logger, stateCollecting)
	return mergeResults([]ChunkResult{res}), res.Duration
}

// runParallel probes serial throughput on a small sample, partitions the
// batch across the pool, and collects results until every chunk reports or
// the job deadline expires.
func (c *Coordinator) runParallel(ctx context.Context, logger *slog.Logger, files []batch.File, workers int) (mergedResults, time.Duration, int) {
	estimatedSerial := c.estimateSerialTime(ctx, logger, files)

	c.transition(logger, statePartitioning)
	chunks := batch.Partition(files, workers)

	c.transition(logger, stateDispatched)
	results := make(chan ChunkResult, len(chunks))
	for _, chunk := range chunks {
		go c.dispatch(ctx, logger, chunk, results)
	}

	c.transition(logger, stateCollecting)
	collected := make([]ChunkResult, 0, len(chunks))
	abandoned := 0
	for remaining := len(chunks); remaining > 0; remaining-- {
		select {
		case res := <-results:
			collected = append(collected, res)
		case <-ctx.Done():
			abandoned = remaining
			remaining = 0
		}
	}
	if abandoned > 0 {
		logger.Warn("job timed out, abandoning in-flight chunks",
			logging.Int("abandoned", abandoned),
			logging.Int("collected", len(collected)))
	}

	return mergeResults(collected), estimatedSerial, abandoned
}

// dispatch runs one worker unit over one chunk. A panicking worker is
// confined to its own chunk: the recover converts it into a failed
// ChunkResult and every other chunk proceeds untouched.
func (c *Coordinator) dispatch(ctx context.Context, logger *slog.Logger, chunk batch.Chunk, results chan<- ChunkResult) {
	workerLogger := logger.With(logging.Int(logging.FieldWorkerID, chunk.Index))
	defer func() {
		if r := recover(); r != nil {
			workerLogger.Error("worker panicked, discarding chunk",
				logging.Any("panic", r),
				logging.Int("files", chunk.Len()))
			results <- ChunkResult{Chunk: chunk.Index, Failed: true}
		}
	}()

	w := &worker{extractor: c.opts.Extractor, logger: workerLogger}
	results <- w.process(logging.WithWorkerID(ctx, chunk.Index), chunk)
}

// estimateSerialTime measures a small serial sample and extrapolates
// linearly to the full batch. The probe reuses the worker implementation so
// the sample exercises exactly the per-file work the real run will do.
func (c *Coordinator) estimateSerialTime(ctx context.Context, logger *slog.Logger, files []batch.File) time.Duration {
	sample := c.opts.SerialSampleSize
	if sample > len(files) {
		sample = len(files)
	}
	probeDuration := func() (d time.Duration) {
		defer func() {
			if r := recover(); r != nil {
				logger.Debug("serial probe panicked, skipping estimate", logging.Any("panic", r))
				d = 0
			}
		}()
		w := &worker{extractor: c.opts.Extractor, logger: logging.NewNop()}
		return w.process(ctx, batch.Chunk{Index: -1, Files: files[:sample]}).Duration
	}()
	estimate := probeDuration * time.Duration(len(files)) / time.Duration(sample)
	logger.Debug("serial time estimated",
		logging.Int("sample", sample),
		logging.Duration("sample_time", probeDuration),
		logging.Duration("estimate", estimate))
	return estimate
}

func (c *Coordinator) materialize(ctx context.Context, logger *slog.Logger, jobID string, placements map[classify.Category][]batch.File, report *Report) {
	if c.opts.Organizer == nil {
		report.OrganizeError = "no organizer configured"
		return
	}
	path, err := c.opts.Organizer.Organize(ctx, jobID, placements)
	if err != nil {
		logger.Warn("organize failed, report unaffected", logging.Error(err))
		report.OrganizeError = err.Error()
		return
	}
	report.OrganizedPath = path
}

func (c *Coordinator) transition(logger *slog.Logger, state jobState) {
	logger.Debug("job state", logging.String("state", string(state)))
}

// mergedResults is the coordinator-side accumulation of every collected
// chunk. Only the coordinator touches it, after all workers have finished.
type mergedResults struct {
	processed    int
	readable     int
	failed       int
	counts       map[classify.Category]int
	files        map[classify.Category][]FileEntry
	placements   map[classify.Category][]batch.File
	fingerprints *dedupe.Index
	errors       []FileError
	workerTimes  map[int]time.Duration
}

// mergeResults folds chunk results in chunk order, so listings are
// deterministic regardless of completion order.
func mergeResults(results []ChunkResult) mergedResults {
	sort.Slice(results, func(i, j int) bool { return results[i].Chunk < results[j].Chunk })

	m := mergedResults{
		counts:       make(map[classify.Category]int),
		files:        make(map[classify.Category][]FileEntry),
		placements:   make(map[classify.Category][]batch.File),
		fingerprints: dedupe.NewIndex(),
		workerTimes:  make(map[int]time.Duration),
	}
	for _, res := range results {
		if res.Failed {
			m.failed++
			continue
		}
		m.processed += res.Processed
		m.readable += res.Readable
		for cat, n := range res.Counts {
			m.counts[cat] += n
		}
		for cat, entries := range res.Files {
			m.files[cat] = append(m.files[cat], entries...)
		}
		for cat, placed := range res.Placements {
			m.placements[cat] = append(m.placements[cat], placed...)
		}
		m.fingerprints.Merge(res.Fingerprints)
		m.errors = append(m.errors, res.Errors...)
		m.workerTimes[res.Chunk] = res.Duration
	}
	return m
}
