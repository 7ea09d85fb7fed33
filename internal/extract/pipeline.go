package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/resumatic/resume-parser/internal/common"
)

// Pipeline runs the extraction strategies against one PDF and returns the
// best normalized text. Structural and Layout always run; Optical only when
// their combined best falls under ExtractionThreshold and the capability
// probe found a recognition engine.
//
// All state is per-call; a Pipeline is safe for concurrent use.
type Pipeline struct {
	Structural Strategy
	Layout     Strategy
	Optical    Strategy // nil when optical recognition is unavailable
	Logger     *slog.Logger
}

// NewPipeline wires the default strategies. caps comes from a one-time
// DetectCapabilities probe at startup; an unavailable recognition engine
// leaves the pipeline permanently degraded to the two cheap strategies.
func NewPipeline(cfg common.OCRConfig, caps Capabilities, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		Structural: NewStructuralStrategy(logger),
		Layout:     NewLayoutStrategy(logger),
		Logger:     logger,
	}
	if caps.Optical {
		p.Optical = NewOpticalStrategy(cfg, caps, logger)
	} else {
		logger.Warn("optical recognition unavailable; running with text strategies only")
	}
	return p
}

// ExtractText turns the PDF at path into cleaned plain text.
// A missing file is the only fatal condition; individual strategy failures
// degrade to empty candidates and surface as warnings on the Result.
func (p *Pipeline) ExtractText(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	if _, err := os.Stat(path); err != nil {
		return Result{}, common.NewAppError("NOT_FOUND", fmt.Sprintf("pdf not found: %s", path), common.ErrNotFound)
	}

	var warnings []string
	structural := p.run(ctx, p.Structural, path, &warnings)
	layout := p.run(ctx, p.Layout, path, &warnings)

	candidates := []Candidate{structural, layout}
	if max(structural.Length, layout.Length) < ExtractionThreshold {
		if p.Optical != nil {
			p.Logger.Info("text strategies yielded little content; trying optical recognition",
				"path", path, "structural_len", structural.Length, "layout_len", layout.Length)
			candidates = append(candidates, p.run(ctx, p.Optical, path, &warnings))
		} else {
			p.Logger.Warn("document appears image-based but optical recognition is unavailable", "path", path)
			warnings = append(warnings, "optical recognition unavailable")
		}
	}

	best := SelectBest(candidates)
	for _, c := range candidates {
		p.Logger.Debug("extraction candidate", "path", path, "method", c.Method, "length", c.Length)
	}
	p.Logger.Info("extraction complete",
		"path", path, "method", best.Method, "length", best.Length, "duration", time.Since(start))

	return Result{
		Text:     Normalize(best.Text),
		Method:   best.Method,
		Pages:    best.Pages,
		Duration: time.Since(start),
		Warnings: warnings,
	}, nil
}

// run executes one strategy, degrading any failure to an empty candidate.
func (p *Pipeline) run(ctx context.Context, s Strategy, path string, warnings *[]string) Candidate {
	text, pages, err := s.Extract(ctx, path)
	if err != nil {
		p.Logger.Warn("extraction strategy failed", "path", path, "method", s.Method(), "error", err)
		*warnings = append(*warnings, fmt.Sprintf("%s: %v", s.Method(), err))
		return NewCandidate(s.Method(), "", 0)
	}
	return NewCandidate(s.Method(), text, pages)
}
