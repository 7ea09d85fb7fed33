package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/resumatic/resume-parser/internal/fields"
	"github.com/resumatic/resume-parser/internal/repository"
)

// Service produces XLSX exports from the resume repository.
type Service struct {
	resumesRepo repository.ResumeRepository
	logger      *slog.Logger
}

func NewService(repo repository.ResumeRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{resumesRepo: repo, logger: logger}
}

// ExportResumesXLSX returns an XLSX workbook (as bytes) of a user's parsed
// resumes, one row per stored parse result.
func (s *Service) ExportResumesXLSX(ctx context.Context, userID string) ([]byte, error) {
	start := time.Now()

	recs, err := s.resumesRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query resumes: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("close workbook", "error", cerr)
		}
	}()

	const sheet = "Resumes"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Email",
		"Phone",
		"Skills",
		"Extraction Method",
		"Source File",
		"Parsed At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		var parsed fields.Resume
		if err := json.Unmarshal([]byte(r.FieldsJSON), &parsed); err != nil {
			s.logger.Warn("skipping row with bad fields json", "resume_id", r.ID, "error", err)
			continue
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, parsed.Name)
		write(2, parsed.Email)
		write(3, parsed.Phone)
		write(4, strings.Join(parsed.Skills, ", "))
		write(5, r.Method)
		write(6, r.SourcePath)
		write(7, r.CreatedAt.Format("2006-01-02 15:04"))
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 22) // name
	_ = f.SetColWidth(sheet, "B", "B", 28) // email
	_ = f.SetColWidth(sheet, "D", "D", 40) // skills
	_ = f.SetColWidth(sheet, "F", "F", 40) // source path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("exported resumes",
		"user_id", userID,
		"rows", row-2,
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
