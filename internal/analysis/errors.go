package analysis

import "errors"

var (
	// ErrEmptyBatch is returned when a job is submitted with no files.
	ErrEmptyBatch = errors.New("analysis: empty batch")

	// ErrNothingReadable is returned when no file in the batch could be
	// read. Partial read failures only degrade the report; this fires when
	// every single file was unreadable or every chunk failed.
	ErrNothingReadable = errors.New("analysis: no readable files in batch")
)
