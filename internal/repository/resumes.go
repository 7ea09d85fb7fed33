package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/resumatic/resume-parser/internal/common"
)

// ResumeRecord is one stored parse result. ExtractedText is kept verbatim
// alongside the structured fields.
type ResumeRecord struct {
	ID            uuid.UUID
	UserID        string
	SourcePath    string
	Method        string
	Pages         int
	ExtractedText string
	FieldsJSON    string
	CreatedAt     time.Time
}

// ResumeRepository persists parse results.
type ResumeRepository interface {
	Save(ctx context.Context, rec *ResumeRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*ResumeRecord, error)
	ListByUser(ctx context.Context, userID string) ([]*ResumeRecord, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type sqlResumeRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewResumeRepository(db *sql.DB, logger *slog.Logger) ResumeRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &sqlResumeRepository{db: db, logger: logger}
}

// Save inserts rec, assigning ID and CreatedAt when unset.
func (r *sqlResumeRepository) Save(ctx context.Context, rec *ResumeRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	const q = `INSERT INTO resumes (id, user_id, source_path, method, page_count, extracted_text, fields_json, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.ExecContext(ctx, q,
		rec.ID.String(), rec.UserID, rec.SourcePath, rec.Method, rec.Pages, rec.ExtractedText, rec.FieldsJSON, rec.CreatedAt,
	); err != nil {
		r.logger.Error("save resume failed", "user_id", rec.UserID, "error", err)
		return common.NewAppError("DB_ERROR", "save resume", err)
	}
	return nil
}

func (r *sqlResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	const q = `SELECT id, user_id, source_path, method, page_count, extracted_text, fields_json, created_at
FROM resumes WHERE id = $1`
	rec, err := scanResume(r.db.QueryRowContext(ctx, q, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewAppError("NOT_FOUND", "resume not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, common.NewAppError("DB_ERROR", "get resume", err)
	}
	return rec, nil
}

func (r *sqlResumeRepository) ListByUser(ctx context.Context, userID string) ([]*ResumeRecord, error) {
	const q = `SELECT id, user_id, source_path, method, page_count, extracted_text, fields_json, created_at
FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, common.NewAppError("DB_ERROR", "list resumes", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			r.logger.Warn("close rows", "error", cerr)
		}
	}()

	var out []*ResumeRecord
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, common.NewAppError("DB_ERROR", "scan resume", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewAppError("DB_ERROR", "iterate resumes", err)
	}
	return out, nil
}

func (r *sqlResumeRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM resumes WHERE user_id = $1`, userID)
	if err != nil {
		return 0, common.NewAppError("DB_ERROR", "delete resumes", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, common.NewAppError("DB_ERROR", "rows affected", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (*ResumeRecord, error) {
	var (
		rec   ResumeRecord
		rawID string
	)
	if err := row.Scan(&rawID, &rec.UserID, &rec.SourcePath, &rec.Method, &rec.Pages, &rec.ExtractedText, &rec.FieldsJSON, &rec.CreatedAt); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}
