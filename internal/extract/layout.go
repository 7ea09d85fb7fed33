package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// LayoutStrategy reconstructs reading order from page layout geometry via
// MuPDF. A separate library path from the structural walk, so the two fail
// differently on broken documents.
type LayoutStrategy struct {
	logger *slog.Logger
}

func NewLayoutStrategy(logger *slog.Logger) *LayoutStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &LayoutStrategy{logger: logger}
}

func (s *LayoutStrategy) Method() Method { return MethodLayout }

// Extract re-opens the document independently of the structural pass and
// renders each page's text in order, joined with paragraph breaks.
func (s *LayoutStrategy) Extract(ctx context.Context, path string) (string, int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", 0, fmt.Errorf("open document: %w", err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			s.logger.Warn("close document", "path", path, "error", cerr)
		}
	}()

	pages := doc.NumPage()
	segments := make([]string, 0, pages)
	for i := 0; i < pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}
		txt, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("layout page failed", "path", path, "page", i+1, "error", err)
			txt = ""
		}
		segments = append(segments, txt)
	}
	return strings.Join(segments, "\n\n"), pages, nil
}
