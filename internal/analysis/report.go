package analysis

import (
	"sortd/internal/classify"
	"sortd/internal/dedupe"
)

// Mode names the execution strategy a job ran under.
type Mode string

const (
	ModeSerial   Mode = "serial"
	ModeParallel Mode = "parallel"
)

// jobState tracks a job through its lifecycle. Transitions are strictly
// forward; the coordinator logs each one.
type jobState string

const (
	statePending      jobState = "pending"
	statePartitioning jobState = "partitioning"
	stateDispatched   jobState = "dispatched"
	stateCollecting   jobState = "collecting"
	stateMerged       jobState = "merged"
	stateReported     jobState = "reported"
)

// FileEntry is the per-file record carried in category listings.
type FileEntry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// FileError records a file the engine could not fully process. The file
// still appears in the category listings; it is excluded from duplicate
// analysis only.
type FileError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// Bottleneck identifies the critical-path worker and how evenly the load
// spread across the pool.
type Bottleneck struct {
	SlowestWorker    int     `json:"slowest_worker"`
	FastestWorker    int     `json:"fastest_worker"`
	LoadBalanceRatio float64 `json:"load_balance_ratio"`
}

// Metrics summarizes how the job performed. All times are in seconds.
//
// Efficiency is deliberately not clamped to 100: superlinear results are
// real measurements (cache effects, I/O overlap) and hiding them would make
// the numbers lie.
type Metrics struct {
	ParallelTime        float64         `json:"parallel_time"`
	EstimatedSerialTime float64         `json:"estimated_serial_time"`
	Speedup             float64         `json:"speedup"`
	Efficiency          float64         `json:"efficiency"`
	Throughput          float64         `json:"throughput"`
	WorkerTimes         map[int]float64 `json:"worker_times"`
	Bottleneck          Bottleneck      `json:"bottleneck_analysis"`
	MemoryRSSMB         float64         `json:"memory_usage_mb,omitempty"`
}

// Report is the result of one analysis job. A report may be degraded —
// FailedChunks and AbandonedChunks count work that contributed nothing —
// but it is always internally consistent: FilesProcessed equals the sum of
// CategoryCounts, and every listed file appears in exactly one category.
type Report struct {
	JobID           string                            `json:"job_id"`
	Mode            Mode                              `json:"mode"`
	WorkersUsed     int                               `json:"workers_used"`
	FilesProcessed  int                               `json:"files_processed"`
	CategoryCounts  map[classify.Category]int         `json:"category_counts"`
	CategoryFiles   map[classify.Category][]FileEntry `json:"category_files"`
	DuplicateGroups []dedupe.Group                    `json:"duplicate_groups"`
	Performance     Metrics                           `json:"performance"`
	FailedChunks    int                               `json:"failed_chunks,omitempty"`
	AbandonedChunks int                               `json:"abandoned_chunks,omitempty"`
	FileErrors      []FileError                       `json:"file_errors,omitempty"`
	OrganizedPath   string                            `json:"organized_path,omitempty"`
	OrganizeError   string                            `json:"organize_error,omitempty"`
}

// Degraded reports whether any chunk failed or was abandoned before
// completion.
func (r *Report) Degraded() bool {
	return r.FailedChunks > 0 || r.AbandonedChunks > 0
}
