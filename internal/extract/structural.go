package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// StructuralStrategy walks the PDF's internal text objects page by page.
// Fast, but yields nothing on image-only or malformed documents.
type StructuralStrategy struct {
	logger *slog.Logger
}

func NewStructuralStrategy(logger *slog.Logger) *StructuralStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &StructuralStrategy{logger: logger}
}

func (s *StructuralStrategy) Method() Method { return MethodStructural }

// Extract concatenates each page's plain text with a paragraph break between
// pages. The underlying library is known to panic on malformed input, so both
// the whole call and each page are guarded.
func (s *StructuralStrategy) Extract(ctx context.Context, path string) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = fmt.Errorf("structural extraction panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("close pdf", "path", path, "error", cerr)
		}
	}()

	pages = reader.NumPage()
	segments := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}
		segments = append(segments, s.pageText(reader, i, path))
	}
	return strings.Join(segments, "\n\n"), pages, nil
}

// pageText extracts a single page, degrading to "" on per-page errors or
// panics so one corrupt page cannot void the rest of the document.
func (s *StructuralStrategy) pageText(reader *pdf.Reader, n int, path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("structural page panic", "path", path, "page", n, "panic", r)
			text = ""
		}
	}()

	page := reader.Page(n)
	if page.V.IsNull() {
		return ""
	}
	txt, err := page.GetPlainText(nil)
	if err != nil {
		s.logger.Warn("structural page failed", "path", path, "page", n, "error", err)
		return ""
	}
	return txt
}
