// Package storage defines the local ledger of seed upload outcomes.
package storage

import (
	"context"
	"time"
)

// Upload outcomes.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// UploadRecord is the outcome of one document write.
type UploadRecord struct {
	ID         int64
	RunID      string
	Collection string
	DocumentID string
	Label      string
	Outcome    string
	ErrorCode  string
	LastError  string
	CreatedAt  time.Time
}

// UploadStore persists upload outcome records.
type UploadStore interface {
	RecordUpload(ctx context.Context, record UploadRecord) error
	ListUploads(ctx context.Context, limit int) ([]UploadRecord, error)
}
