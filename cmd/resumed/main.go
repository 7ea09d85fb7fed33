package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/resumatic/resume-parser/internal/common"
	"github.com/resumatic/resume-parser/internal/extract"
	"github.com/resumatic/resume-parser/internal/fields"
	"github.com/resumatic/resume-parser/internal/ingest"
	"github.com/resumatic/resume-parser/internal/pipeline"
	"github.com/resumatic/resume-parser/internal/repository"
)

// resumed watches drop directories and parses every resume PDF that lands in
// them, persisting the results.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("close db", "error", cerr)
		}
	}()
	if err := repository.Migrate(ctx, db); err != nil {
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}

	caps := extract.DetectCapabilities(cfg.OCR, logger)
	proc := pipeline.NewProcessor(
		logger,
		extract.NewPipeline(cfg.OCR, caps, logger),
		fields.NewDefaultExtractor(logger),
		repository.NewResumeRepository(db, logger),
	)

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Ingest.Roots,
		InitialScan: cfg.Ingest.InitialScan,
		Debounce:    cfg.Ingest.Debounce,
	}, logger)
	if err != nil {
		logger.Error("start watcher", "error", err)
		os.Exit(1)
	}

	logger.Info("resumed started", "roots", cfg.Ingest.Roots, "optical", caps.Optical)
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return
		case err, ok := <-errs:
			if ok {
				logger.Error("watcher error", "error", err)
			}
		case path, ok := <-events:
			if !ok {
				return
			}
			if _, err := proc.ProcessFile(ctx, path, cfg.Ingest.DefaultUser); err != nil {
				logger.Error("process file failed", "path", path, "error", err)
			}
		}
	}
}
