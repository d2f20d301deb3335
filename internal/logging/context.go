package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldJobID is the standardized structured logging key for analysis job identifiers.
	FieldJobID = "job_id"
	// FieldWorkerID is the standardized structured logging key for worker unit identifiers.
	FieldWorkerID = "worker_id"
	// FieldChunk is the standardized structured logging key for chunk indexes.
	FieldChunk = "chunk"
	// FieldFile is the standardized structured logging key for file names.
	FieldFile = "file"
)

type contextKey string

const (
	jobIDKey    contextKey = "job_id"
	workerIDKey contextKey = "worker_id"
)

// WithJobID annotates context with the analysis job identifier.
func WithJobID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, jobIDKey, id)
}

// JobIDFromContext extracts the analysis job identifier if present.
func JobIDFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(jobIDKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithWorkerID annotates context with the worker unit identifier.
func WithWorkerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, workerIDKey, id)
}

// WorkerIDFromContext extracts the worker unit identifier if present.
func WorkerIDFromContext(ctx context.Context) (int, bool) {
	if id, ok := ctx.Value(workerIDKey).(int); ok {
		return id, true
	}
	return 0, false
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := JobIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldJobID, id))
	}
	if id, ok := WorkerIDFromContext(ctx); ok {
		fields = append(fields, slog.Int(FieldWorkerID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
