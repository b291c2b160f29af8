package seed

import (
	"context"
	"sync"

	"github.com/ascendlifequest/questseed/internal/quest"
	"github.com/ascendlifequest/questseed/internal/tools/seed/storage"
)

type fakeWriter struct {
	mu       sync.Mutex
	written  []quest.Document
	setFn    func(context.Context, quest.Document) error
	closeErr error
	closed   bool
}

func (f *fakeWriter) SetDocument(ctx context.Context, doc quest.Document) error {
	f.mu.Lock()
	f.written = append(f.written, doc)
	f.mu.Unlock()
	if f.setFn != nil {
		return f.setFn(ctx, doc)
	}
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return f.closeErr
}

func (f *fakeWriter) paths() map[string]bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	paths := make(map[string]bool, len(f.written))
	for _, doc := range f.written {
		paths[doc.Path()] = true
	}
	return paths
}

type fakeLedger struct {
	mu       sync.Mutex
	records  []storage.UploadRecord
	recordFn func(context.Context, storage.UploadRecord) error
	listFn   func(context.Context, int) ([]storage.UploadRecord, error)
	closed   bool
}

func (f *fakeLedger) RecordUpload(ctx context.Context, record storage.UploadRecord) error {
	if f.recordFn != nil {
		if err := f.recordFn(ctx, record); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record)
	return nil
}

func (f *fakeLedger) ListUploads(ctx context.Context, limit int) ([]storage.UploadRecord, error) {
	if f.listFn != nil {
		return f.listFn(ctx, limit)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.records) {
		limit = len(f.records)
	}
	return append([]storage.UploadRecord(nil), f.records[:limit]...), nil
}

func (f *fakeLedger) Close() error {
	f.closed = true
	return nil
}

func (f *fakeLedger) snapshot() []storage.UploadRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]storage.UploadRecord(nil), f.records...)
}
