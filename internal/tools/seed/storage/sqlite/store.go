package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/ascendlifequest/questseed/internal/platform/storage/sqlitemigrate"
	"github.com/ascendlifequest/questseed/internal/tools/seed/storage"
	"github.com/ascendlifequest/questseed/internal/tools/seed/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides the SQLite-backed upload ledger.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the ledger database and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ledger path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordUpload appends one upload outcome.
func (s *Store) RecordUpload(ctx context.Context, record storage.UploadRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	record.RunID = strings.TrimSpace(record.RunID)
	record.Collection = strings.TrimSpace(record.Collection)
	record.DocumentID = strings.TrimSpace(record.DocumentID)
	record.Outcome = strings.TrimSpace(record.Outcome)
	record.LastError = strings.TrimSpace(record.LastError)
	switch {
	case record.RunID == "":
		return fmt.Errorf("run id is required")
	case record.Collection == "":
		return fmt.Errorf("collection is required")
	case record.DocumentID == "":
		return fmt.Errorf("document id is required")
	case record.Outcome == "":
		return fmt.Errorf("outcome is required")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO seed_uploads (
	run_id,
	collection,
	document_id,
	label,
	outcome,
	error_code,
	last_error,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`,
		record.RunID,
		record.Collection,
		record.DocumentID,
		record.Label,
		record.Outcome,
		record.ErrorCode,
		record.LastError,
		record.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record upload: %w", err)
	}
	return nil
}

// ListUploads lists upload records, newest first.
func (s *Store) ListUploads(ctx context.Context, limit int) ([]storage.UploadRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT
	id,
	run_id,
	collection,
	document_id,
	label,
	outcome,
	error_code,
	last_error,
	created_at
FROM seed_uploads
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	records := make([]storage.UploadRecord, 0, limit)
	for rows.Next() {
		var record storage.UploadRecord
		var createdAt int64
		if err := rows.Scan(
			&record.ID,
			&record.RunID,
			&record.Collection,
			&record.DocumentID,
			&record.Label,
			&record.Outcome,
			&record.ErrorCode,
			&record.LastError,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		record.CreatedAt = time.UnixMilli(createdAt).UTC()
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate uploads: %w", err)
	}
	return records, nil
}

var _ storage.UploadStore = (*Store)(nil)
