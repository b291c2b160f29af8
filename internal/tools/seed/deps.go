package seed

import (
	"context"

	"github.com/ascendlifequest/questseed/internal/quest"
	"github.com/ascendlifequest/questseed/internal/tools/seed/storage"
)

// DocumentWriter sets one document, replacing any existing content.
type DocumentWriter interface {
	SetDocument(ctx context.Context, doc quest.Document) error
}

// UploadRecorder is the subset of storage.UploadStore used by Uploader.
type UploadRecorder interface {
	RecordUpload(ctx context.Context, record storage.UploadRecord) error
}
