package testsupport

import (
	"context"
	"testing"

	"sortd/internal/analysis"
	"sortd/internal/config"
	"sortd/internal/session"
)

// MustOpenStore opens a session.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *session.Store {
	t.Helper()

	store, err := session.Open(cfg)
	if err != nil {
		t.Fatalf("session.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// RecordReport persists a report for tests using the provided store.
func RecordReport(t testing.TB, store *session.Store, report *analysis.Report) *session.Session {
	t.Helper()

	sess, err := store.Record(context.Background(), report)
	if err != nil {
		t.Fatalf("store.Record: %v", err)
	}
	return sess
}
