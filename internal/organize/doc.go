// Package organize materializes an analysis result on disk: every file in
// the batch is copied into a per-category directory under the configured
// root, with collision-safe naming for duplicate basenames.
//
// Organizing is an optional, best-effort step. The analysis report is the
// source of truth either way; a failed or partial organize never invalidates
// the classification results it was derived from.
package organize
