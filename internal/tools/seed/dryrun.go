package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/ascendlifequest/questseed/internal/quest"
)

// DryRunWriter prints documents as JSON lines instead of writing them.
type DryRunWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

type dryRunLine struct {
	Path   string         `json:"path"`
	Fields map[string]any `json:"fields"`
}

// NewDryRunWriter returns a writer that prints one JSON object per document.
func NewDryRunWriter(out io.Writer) *DryRunWriter {
	return &DryRunWriter{enc: json.NewEncoder(out)}
}

// SetDocument prints doc. Writes from concurrent goroutines do not interleave.
func (w *DryRunWriter) SetDocument(ctx context.Context, doc quest.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(dryRunLine{Path: doc.Path(), Fields: doc.Fields}); err != nil {
		return fmt.Errorf("print %s: %w", doc.Path(), err)
	}
	return nil
}

var _ DocumentWriter = (*DryRunWriter)(nil)
