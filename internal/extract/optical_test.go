package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/resumatic/resume-parser/internal/common"
)

// fakeRunner simulates pdftoppm and tesseract. The rasterizer writes
// pageCount fake PNGs next to the requested prefix; recognition returns
// canned text per page and can fail selected pages.
type fakeRunner struct {
	pageCount   int
	pageText    map[int]string
	failPages   map[int]bool
	rasterErr   error
	renderedDir string
	calls       []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	if strings.Contains(name, "pdftoppm") {
		if f.rasterErr != nil {
			return nil, []byte("raster boom"), f.rasterErr
		}
		prefix := args[len(args)-1]
		f.renderedDir = filepath.Dir(prefix)
		for i := 1; i <= f.pageCount; i++ {
			img := fmt.Sprintf("%s-%d.png", prefix, i)
			if err := os.WriteFile(img, []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	}
	// tesseract: first arg is the page image
	img := args[0]
	var page int
	if _, err := fmt.Sscanf(filepath.Base(img), "page-%d.png", &page); err != nil {
		return nil, nil, fmt.Errorf("unexpected image name %q", img)
	}
	if f.failPages[page] {
		return nil, []byte("ocr boom"), fmt.Errorf("exit status 1")
	}
	return []byte(f.pageText[page]), nil, nil
}

func newOpticalForTest(r Runner) *OpticalStrategy {
	s := NewOpticalStrategy(common.OCRConfig{}, Capabilities{
		Optical:       true,
		PdftoppmPath:  "/usr/bin/pdftoppm",
		TesseractPath: "/usr/bin/tesseract",
	}, testLogger())
	s.runner = r
	return s
}

func TestOpticalJoinsPagesInOrder(t *testing.T) {
	runner := &fakeRunner{
		pageCount: 3,
		pageText:  map[int]string{1: "page one", 2: "page two", 3: "page three"},
	}
	s := newOpticalForTest(runner)

	got, pages, err := s.Extract(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatal(err)
	}
	want := "page one\n\npage two\n\npage three"
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
	if pages != 3 {
		t.Errorf("pages = %d, want 3", pages)
	}
}

func TestOpticalToleratesSinglePageFailure(t *testing.T) {
	runner := &fakeRunner{
		pageCount: 3,
		pageText:  map[int]string{1: "page one", 3: "page three"},
		failPages: map[int]bool{2: true},
	}
	s := newOpticalForTest(runner)

	got, _, err := s.Extract(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("one damaged page must not void the document: %v", err)
	}
	want := "page one\n\n\n\npage three"
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestOpticalCleansUpTempDir(t *testing.T) {
	runner := &fakeRunner{pageCount: 1, pageText: map[int]string{1: "hello"}}
	s := newOpticalForTest(runner)

	if _, _, err := s.Extract(context.Background(), "scan.pdf"); err != nil {
		t.Fatal(err)
	}
	if runner.renderedDir == "" {
		t.Fatal("rasterizer never ran")
	}
	if _, err := os.Stat(runner.renderedDir); !os.IsNotExist(err) {
		t.Errorf("temp dir %s still exists (err=%v)", runner.renderedDir, err)
	}
}

func TestOpticalCleansUpTempDirOnRasterFailure(t *testing.T) {
	runner := &fakeRunner{rasterErr: fmt.Errorf("exit status 1")}
	s := newOpticalForTest(runner)

	if _, _, err := s.Extract(context.Background(), "scan.pdf"); err == nil {
		t.Fatal("expected rasterization error")
	}
}

func TestOpticalFailsWhenNoPagesRendered(t *testing.T) {
	runner := &fakeRunner{pageCount: 0}
	s := newOpticalForTest(runner)

	if _, _, err := s.Extract(context.Background(), "scan.pdf"); err == nil {
		t.Fatal("expected error when rasterizer produced no images")
	}
}

func TestOpticalHonorsMaxPages(t *testing.T) {
	runner := &fakeRunner{
		pageCount: 3,
		pageText:  map[int]string{1: "one", 2: "two", 3: "three"},
	}
	s := NewOpticalStrategy(common.OCRConfig{MaxPages: 2}, Capabilities{
		Optical:       true,
		PdftoppmPath:  "/usr/bin/pdftoppm",
		TesseractPath: "/usr/bin/tesseract",
	}, testLogger())
	s.runner = runner

	got, pages, err := s.Extract(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if got != "one\n\ntwo" {
		t.Errorf("Extract = %q, want %q", got, "one\n\ntwo")
	}
	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}
}
