package daemon

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"log/slog"

	"github.com/gofrs/flock"

	"sortd/internal/analysis"
	"sortd/internal/batch"
	"sortd/internal/config"
	"sortd/internal/logging"
	"sortd/internal/organize"
	"sortd/internal/scan"
	"sortd/internal/session"
)

// Daemon ties the analysis engine, session store, and API server together
// and enforces single-instance execution.
type Daemon struct {
	cfg         *config.Config
	logger      *slog.Logger
	store       *session.Store
	coordinator *analysis.Coordinator

	lockPath string
	lock     *flock.Flock

	api       *apiServer
	running   atomic.Bool
	startedAt time.Time
	cancel    context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running       bool      `json:"running"`
	StartedAt     time.Time `json:"started_at,omitzero"`
	DatabasePath  string    `json:"database_path"`
	LockFilePath  string    `json:"lock_file_path"`
	ListenAddress string    `json:"listen_address,omitempty"`
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, store *session.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || store == nil || logger == nil {
		return nil, errors.New("daemon requires config, store, and logger")
	}

	organizer := organize.New(cfg.Paths.OrganizedDir, logger)
	lockPath := filepath.Join(cfg.Paths.DataDir, "sortdd.lock")
	d := &Daemon{
		cfg:         cfg,
		logger:      logging.NewComponentLogger(logger, "daemon"),
		store:       store,
		coordinator: analysis.NewCoordinatorFromConfig(cfg, logger, organizer),
		lockPath:    lockPath,
		lock:        flock.New(lockPath),
	}
	d.api = newAPIServer(cfg, d, logger)
	return d, nil
}

// Start acquires the daemon lock and brings up the API server.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another sortd daemon instance is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	if err := d.api.start(runCtx); err != nil {
		_ = d.lock.Unlock()
		cancel()
		d.cancel = nil
		return err
	}

	d.startedAt = time.Now().UTC()
	d.running.Store(true)
	d.logger.Info("sortd daemon started", logging.String("lock", d.lockPath))
	return nil
}

// Stop shuts the API server down and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.api.stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("sortd daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Analyze scans path, runs one analysis job, and appends it to the session
// history. Recording failures are logged, not fatal: the caller still gets
// the report it paid for.
func (d *Daemon) Analyze(ctx context.Context, path string, organizeFiles bool) (*analysis.Report, error) {
	files, err := scan.Directory(path)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return d.AnalyzeBatch(ctx, files, organizeFiles)
}

// AnalyzeBatch runs one analysis job over an already-assembled batch.
func (d *Daemon) AnalyzeBatch(ctx context.Context, files []batch.File, organizeFiles bool) (*analysis.Report, error) {
	report, err := d.coordinator.Run(ctx, files, organizeFiles)
	if err != nil {
		return nil, err
	}
	if _, err := d.store.Record(ctx, report); err != nil {
		d.logger.Warn("failed to record session",
			logging.String(logging.FieldJobID, report.JobID),
			logging.Error(err))
	}
	return report, nil
}

// Sessions returns the most recent session records, newest first.
func (d *Daemon) Sessions(ctx context.Context, limit int) ([]session.Session, error) {
	return d.store.List(ctx, limit)
}

// Status returns the current daemon status.
func (d *Daemon) Status() Status {
	status := Status{
		Running:      d.running.Load(),
		StartedAt:    d.startedAt,
		DatabasePath: d.cfg.DatabasePath(),
		LockFilePath: d.lockPath,
	}
	if addr := d.api.address(); addr != "" {
		status.ListenAddress = addr
	}
	return status
}
