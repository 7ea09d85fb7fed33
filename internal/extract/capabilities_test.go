package extract

import (
	"testing"

	"github.com/resumatic/resume-parser/internal/common"
)

func TestDetectCapabilitiesMissingBinaries(t *testing.T) {
	caps := DetectCapabilities(common.OCRConfig{
		Pdftoppm:  "definitely-not-a-real-binary-xyz",
		Tesseract: "also-not-real-xyz",
	}, testLogger())
	if caps.Optical {
		t.Error("expected optical recognition to be unavailable")
	}
}

func TestDetectCapabilitiesMissingRecognizerOnly(t *testing.T) {
	caps := DetectCapabilities(common.OCRConfig{
		Pdftoppm:  "sh", // present on any test host
		Tesseract: "also-not-real-xyz",
	}, testLogger())
	if caps.Optical {
		t.Error("rasterizer alone must not enable optical recognition")
	}
}

func TestDetectCapabilitiesAllPresent(t *testing.T) {
	caps := DetectCapabilities(common.OCRConfig{
		Pdftoppm:  "sh",
		Tesseract: "sh",
	}, testLogger())
	if !caps.Optical {
		t.Fatal("expected optical recognition to be available")
	}
	if caps.PdftoppmPath == "" || caps.TesseractPath == "" {
		t.Errorf("resolved paths missing: %+v", caps)
	}
}
