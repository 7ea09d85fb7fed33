package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/resumatic/resume-parser/internal/extract"
	"github.com/resumatic/resume-parser/internal/fields"
	"github.com/resumatic/resume-parser/internal/repository"
)

// TextExtractor is the extraction pipeline seam, stubbed in tests.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (extract.Result, error)
}

// Processor coordinates text extraction, field parsing, and persistence for
// one resume file at a time.
type Processor struct {
	Logger    *slog.Logger
	Extractor TextExtractor
	Fields    fields.FieldExtractor
	Resumes   repository.ResumeRepository
}

func NewProcessor(logger *slog.Logger, tx TextExtractor, fe fields.FieldExtractor, repo repository.ResumeRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extractor: tx, Fields: fe, Resumes: repo}
}

// ProcessFile extracts text from the PDF at path, parses structured fields,
// validates them, and persists one resume row for userID. Returns the new
// resume ID.
func (p *Processor) ProcessFile(ctx context.Context, path, userID string) (uuid.UUID, error) {
	res, err := p.Extractor.ExtractText(ctx, path)
	if err != nil {
		p.Logger.Error("processor.extract.failed", "path", path, "error", err)
		return uuid.Nil, err
	}
	p.Logger.Info("processor.extract.ok",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"text_bytes", len(res.Text),
		"warnings", len(res.Warnings),
	)

	parsed, err := p.Fields.ExtractFields(ctx, res.Text)
	if err != nil {
		p.Logger.Error("processor.fields.failed", "path", path, "error", err)
		return uuid.Nil, err
	}

	data, err := fields.MarshalValidated(parsed)
	if err != nil {
		p.Logger.Error("processor.validate.failed", "path", path, "error", err)
		return uuid.Nil, err
	}

	rec := &repository.ResumeRecord{
		UserID:        userID,
		SourcePath:    path,
		Method:        string(res.Method),
		Pages:         res.Pages,
		ExtractedText: res.Text,
		FieldsJSON:    string(data),
	}
	if err := p.Resumes.Save(ctx, rec); err != nil {
		p.Logger.Error("processor.save.failed", "path", path, "error", err)
		return uuid.Nil, err
	}

	p.Logger.Info("processor.save.ok",
		"resume_id", rec.ID,
		"user_id", userID,
		"name", parsed.Name,
		"email", parsed.Email,
		"skills", len(parsed.Skills),
	)
	return rec.ID, nil
}
