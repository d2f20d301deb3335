package main

import (
	"context"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"

	"sortd/internal/config"
	"sortd/internal/daemon"
	"sortd/internal/logging"
	"sortd/internal/session"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stdout", filepath.Join(cfg.Paths.LogDir, "sortdd.log")},
	})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	store, err := session.Open(cfg)
	if err != nil {
		log.Fatalf("open session store: %v", err)
	}

	d, err := daemon.New(cfg, store, logger)
	if err != nil {
		store.Close()
		log.Fatalf("init daemon: %v", err)
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		log.Fatalf("start daemon: %v", err)
	}

	<-ctx.Done()
	d.Stop()
}
