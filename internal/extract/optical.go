package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/resumatic/resume-parser/internal/common"
)

// OpticalStrategy rasterizes each page and runs character recognition on the
// rendered images. The most expensive path; only constructed when the
// startup capability probe found both external binaries.
type OpticalStrategy struct {
	cfg    common.OCRConfig
	caps   Capabilities
	runner Runner
	logger *slog.Logger
}

func NewOpticalStrategy(cfg common.OCRConfig, caps Capabilities, logger *slog.Logger) *OpticalStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &OpticalStrategy{cfg: cfg, caps: caps, runner: execRunner{logger: logger}, logger: logger}
}

func (s *OpticalStrategy) Method() Method { return MethodOptical }

// Extract renders every page to a PNG inside a scoped temp directory, then
// recognizes the images in page order. The directory is removed on every
// exit path. A failed page contributes an empty segment; its siblings are
// unaffected.
func (s *OpticalStrategy) Extract(ctx context.Context, path string) (string, int, error) {
	tmpDir, err := os.MkdirTemp("", "rp-ocr-*")
	if err != nil {
		return "", 0, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			s.logger.Warn("remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := s.runner.Run(ctx, s.caps.PdftoppmPath, "-r", fmt.Sprintf("%d", s.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, fmt.Errorf("rasterize: %w (%s)", err, truncate(string(errb), 512))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if s.cfg.MaxPages > 0 && len(matches) > s.cfg.MaxPages {
		matches = matches[:s.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, fmt.Errorf("rasterizer produced no page images")
	}

	segments := make([]string, len(matches))
	for i, img := range matches {
		txt, err := s.recognize(ctx, img)
		if err != nil {
			// keep the empty segment so surviving pages stay in order
			s.logger.Warn("page recognition failed", "path", path, "page", i+1, "error", err)
			continue
		}
		segments[i] = txt
	}
	return strings.Join(segments, "\n\n"), len(matches), nil
}

// recognize runs the recognition engine on a single page image.
func (s *OpticalStrategy) recognize(ctx context.Context, imgPath string) (string, error) {
	args := []string{imgPath, "stdout", "-l", s.cfg.TesseractLang}
	if s.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", s.cfg.TessdataDir)
	}

	// tesseract <img> stdout -l <lang>
	out, errb, err := s.runner.Run(ctx, s.caps.TesseractPath, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}
	return string(out), nil
}
