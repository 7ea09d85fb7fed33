package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/resumatic/resume-parser/internal/common"
)

// Open connects to the configured database. Postgres DSNs go through pgx;
// anything else is treated as a SQLite path/DSN.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	driver := "sqlite"
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		driver = "pgx"
	}
	logger.Info("connecting to database", "driver", driver)

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open database", "driver", driver, "error", err)
		return nil, common.WrapError(err, "open database")
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		logger.Error("database ping failed", "driver", driver, "error", err)
		return nil, common.WrapError(err, "ping database")
	}
	return db, nil
}

// Migrate creates the resumes table when missing. Column types are kept to
// the intersection SQLite and Postgres both accept.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS resumes (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL,
	source_path    TEXT NOT NULL,
	method         TEXT NOT NULL,
	page_count     INTEGER NOT NULL,
	extracted_text TEXT NOT NULL,
	fields_json    TEXT NOT NULL,
	created_at     TIMESTAMP NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_resumes_user_id ON resumes (user_id)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return common.WrapError(err, "migrate resumes table")
		}
	}
	return nil
}
