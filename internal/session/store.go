package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"sortd/internal/analysis"
	"sortd/internal/config"
)

// ErrNotFound is returned when no session matches the requested job id.
var ErrNotFound = errors.New("session: not found")

// DefaultHistoryLimit bounds List when the caller passes no explicit limit.
const DefaultHistoryLimit = 20

// Session is one persisted analysis run. The summary columns exist for
// cheap listing; ReportJSON carries the complete report.
type Session struct {
	ID              int64
	JobID           string
	CreatedAt       time.Time
	Mode            string
	WorkersUsed     int
	FilesProcessed  int
	DuplicateGroups int
	ParallelTime    float64
	Speedup         float64
	Efficiency      float64
	Degraded        bool
	ReportJSON      string
}

// Report unmarshals the stored report.
func (s *Session) Report() (*analysis.Report, error) {
	var report analysis.Report
	if err := json.Unmarshal([]byte(s.ReportJSON), &report); err != nil {
		return nil, fmt.Errorf("decode stored report: %w", err)
	}
	return &report, nil
}

// Store manages session persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS analysis_sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    job_id TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL,
    mode TEXT NOT NULL,
    workers_used INTEGER NOT NULL,
    files_processed INTEGER NOT NULL,
    duplicate_groups INTEGER NOT NULL,
    parallel_time REAL NOT NULL,
    speedup REAL NOT NULL,
    efficiency REAL NOT NULL,
    degraded INTEGER NOT NULL DEFAULT 0,
    report_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analysis_sessions_created_at
    ON analysis_sessions(created_at);
`

// Open initializes or connects to the session database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Record appends one completed job to the history.
func (s *Store) Record(ctx context.Context, report *analysis.Report) (*Session, error) {
	if report == nil {
		return nil, errors.New("session: nil report")
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO analysis_sessions (
            job_id, created_at, mode, workers_used, files_processed,
            duplicate_groups, parallel_time, speedup, efficiency,
            degraded, report_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.JobID,
		timestamp,
		string(report.Mode),
		report.WorkersUsed,
		report.FilesProcessed,
		len(report.DuplicateGroups),
		report.Performance.ParallelTime,
		report.Performance.Speedup,
		report.Performance.Efficiency,
		boolToInt(report.Degraded()),
		string(reportJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.getByID(ctx, id)
}

// List returns the most recent sessions, newest first. A non-positive limit
// falls back to DefaultHistoryLimit.
func (s *Store) List(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rows, err := s.db.QueryContext(
		ctx,
		selectColumns+` FROM analysis_sessions ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// GetByJobID fetches one session by its job identifier.
func (s *Store) GetByJobID(ctx context.Context, jobID string) (*Session, error) {
	row := s.db.QueryRowContext(
		ctx,
		selectColumns+` FROM analysis_sessions WHERE job_id = ?`,
		jobID,
	)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) getByID(ctx context.Context, id int64) (*Session, error) {
	row := s.db.QueryRowContext(
		ctx,
		selectColumns+` FROM analysis_sessions WHERE id = ?`,
		id,
	)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

const selectColumns = `SELECT
    id, job_id, created_at, mode, workers_used, files_processed,
    duplicate_groups, parallel_time, speedup, efficiency, degraded, report_json`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var (
		sess      Session
		createdAt string
		degraded  int
	)
	err := row.Scan(
		&sess.ID,
		&sess.JobID,
		&createdAt,
		&sess.Mode,
		&sess.WorkersUsed,
		&sess.FilesProcessed,
		&sess.DuplicateGroups,
		&sess.ParallelTime,
		&sess.Speedup,
		&sess.Efficiency,
		&degraded,
		&sess.ReportJSON,
	)
	if err != nil {
		return Session{}, err
	}
	if ts, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
		sess.CreatedAt = ts
	}
	sess.Degraded = degraded != 0
	return sess, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
