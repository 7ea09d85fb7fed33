package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/resumatic/resume-parser/internal/repository"
)

type fakeResumeRepo struct {
	recs []*repository.ResumeRecord
	err  error
}

func (f *fakeResumeRepo) Save(context.Context, *repository.ResumeRecord) error { return nil }
func (f *fakeResumeRepo) GetByID(context.Context, uuid.UUID) (*repository.ResumeRecord, error) {
	return nil, nil
}
func (f *fakeResumeRepo) ListByUser(context.Context, string) ([]*repository.ResumeRecord, error) {
	return f.recs, f.err
}
func (f *fakeResumeRepo) DeleteByUser(context.Context, string) (int64, error) { return 0, nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExportResumesXLSX(t *testing.T) {
	repo := &fakeResumeRepo{recs: []*repository.ResumeRecord{
		{
			ID:         uuid.New(),
			UserID:     "u1",
			SourcePath: "/drop/jane.pdf",
			Method:     "structural",
			FieldsJSON: `{"name":"Jane Smith","email":"jane@example.com","phone":"555","skills":["Python","SQL"],"experience":[],"education":[],"summary":""}`,
			CreatedAt:  time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:         uuid.New(),
			UserID:     "u1",
			SourcePath: "/drop/bad.pdf",
			Method:     "optical",
			FieldsJSON: `not json`, // skipped, not fatal
		},
	}}
	svc := NewService(repo, testLogger())

	data, err := svc.ExportResumesXLSX(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	check := func(cell, want string) {
		t.Helper()
		got, err := f.GetCellValue("Resumes", cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
	check("A1", "Name")
	check("A2", "Jane Smith")
	check("B2", "jane@example.com")
	check("D2", "Python, SQL")
	check("E2", "structural")
	check("F2", "/drop/jane.pdf")
	// malformed row skipped
	check("A3", "")
}

func TestExportResumesXLSXRepoError(t *testing.T) {
	svc := NewService(&fakeResumeRepo{err: errors.New("db down")}, testLogger())
	if _, err := svc.ExportResumesXLSX(context.Background(), "u1"); err == nil {
		t.Fatal("expected error")
	}
}
