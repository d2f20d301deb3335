// Package analysis implements the parallel batch-analysis engine.
//
// The Coordinator owns one job end to end: it selects serial or parallel
// execution, partitions the batch into chunks, dispatches each chunk to an
// isolated worker unit, collects and merges the per-chunk results, and
// derives performance metrics (speedup, efficiency, throughput, load
// balance) from the per-worker timings and a sampled serial-time estimate.
//
// Workers share no mutable state: every worker accumulates into its own
// ChunkResult and duplicate index, and the coordinator performs the only
// merge. That shared-nothing partition is what makes the parallel path safe
// without locks. Failures recover at the smallest possible scope — a bad
// file is flagged and skipped, a failed chunk contributes zero files, and
// only an empty or wholly unreadable batch fails the job.
package analysis
