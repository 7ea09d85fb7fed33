package common

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.OCR.Pdftoppm != "pdftoppm" || cfg.OCR.Tesseract != "tesseract" {
		t.Errorf("unexpected OCR binary defaults: %+v", cfg.OCR)
	}
	if cfg.OCR.DPI != 300 || cfg.OCR.TesseractLang != "eng" {
		t.Errorf("unexpected OCR defaults: %+v", cfg.OCR)
	}
	if cfg.Ingest.DefaultUser != "anonymous" {
		t.Errorf("DefaultUser = %q", cfg.Ingest.DefaultUser)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OCR_DPI", "150")
	t.Setenv("WATCH_DEBOUNCE", "2s")
	t.Setenv("WATCH_DIRS", "/drop/a:/drop/b")

	cfg := LoadConfig()
	if cfg.OCR.DPI != 150 {
		t.Errorf("DPI = %d", cfg.OCR.DPI)
	}
	if cfg.Ingest.Debounce != 2*time.Second {
		t.Errorf("Debounce = %s", cfg.Ingest.Debounce)
	}
	if len(cfg.Ingest.Roots) != 2 || cfg.Ingest.Roots[0] != "/drop/a" {
		t.Errorf("Roots = %v", cfg.Ingest.Roots)
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_URL", "")
	cfg := LoadConfig()
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	t.Setenv("DB_URL", "resumes.db")
	t.Setenv("WATCH_DIRS", "/drop")
	cfg = LoadConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}
