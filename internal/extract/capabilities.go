package extract

import (
	"log/slog"
	"os/exec"

	"github.com/resumatic/resume-parser/internal/common"
)

// Capabilities records which optional tooling was present at startup.
// Probed once and passed into NewPipeline; never re-checked per call.
type Capabilities struct {
	Optical bool

	PdftoppmPath  string
	TesseractPath string
}

// DetectCapabilities probes PATH for the rasterizer and the recognition
// engine. Either one missing disables the optical fallback for the lifetime
// of the process; the pipeline then runs with the two cheap strategies only.
func DetectCapabilities(cfg common.OCRConfig, logger *slog.Logger) Capabilities {
	if logger == nil {
		logger = slog.Default()
	}

	caps := Capabilities{}

	ppm, err := exec.LookPath(cfg.Pdftoppm)
	if err != nil {
		logger.Warn("pdftoppm not found; optical recognition disabled", "bin", cfg.Pdftoppm)
		return caps
	}
	tess, err := exec.LookPath(cfg.Tesseract)
	if err != nil {
		logger.Warn("tesseract not found; optical recognition disabled", "bin", cfg.Tesseract)
		return caps
	}

	caps.Optical = true
	caps.PdftoppmPath = ppm
	caps.TesseractPath = tess
	logger.Debug("optical recognition available", "pdftoppm", ppm, "tesseract", tess)
	return caps
}
