package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/resumatic/resume-parser/internal/common"
	"github.com/resumatic/resume-parser/internal/export"
	"github.com/resumatic/resume-parser/internal/extract"
	"github.com/resumatic/resume-parser/internal/fields"
	"github.com/resumatic/resume-parser/internal/pipeline"
	"github.com/resumatic/resume-parser/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		file      = flag.String("file", "", "path to the resume PDF (required)")
		user      = flag.String("user", "anonymous", "user id to tag the parse result with")
		save      = flag.Bool("save", false, "persist the parse result (requires DB_URL)")
		exportOut = flag.String("export", "", "write the user's stored resumes to this XLSX file (requires DB_URL)")
	)
	flag.Parse()
	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: resume-parser -file <resume.pdf> [-user id] [-save] [-export out.xlsx]")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	caps := extract.DetectCapabilities(cfg.OCR, logger)
	extractor := extract.NewPipeline(cfg.OCR, caps, logger)
	fieldExtractor := fields.NewDefaultExtractor(logger)

	res, err := extractor.ExtractText(ctx, *file)
	if err != nil {
		logger.Error("extraction failed", "file", *file, "error", err)
		os.Exit(1)
	}

	parsed, err := fieldExtractor.ExtractFields(ctx, res.Text)
	if err != nil {
		logger.Error("field parse failed", "file", *file, "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(map[string]any{
		"method":  res.Method,
		"content": parsed,
	}, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if !*save && *exportOut == "" {
		return
	}

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
	repo := repository.NewResumeRepository(db, logger)

	if *save {
		proc := pipeline.NewProcessor(logger, extractor, fieldExtractor, repo)
		id, err := proc.ProcessFile(ctx, *file, *user)
		if err != nil {
			logger.Error("save failed", "file", *file, "error", err)
			os.Exit(1)
		}
		logger.Info("resume saved", "resume_id", id, "user_id", *user)
	}

	if *exportOut != "" {
		svc := export.NewService(repo, logger)
		data, err := svc.ExportResumesXLSX(ctx, *user)
		if err != nil {
			logger.Error("export failed", "user_id", *user, "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*exportOut, data, 0o644); err != nil {
			logger.Error("write export file", "path", *exportOut, "error", err)
			os.Exit(1)
		}
		logger.Info("export written", "path", *exportOut)
	}
}
