package seed

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	apperrors "github.com/ascendlifequest/questseed/internal/platform/errors"
	"github.com/ascendlifequest/questseed/internal/platform/logging"
	platformotel "github.com/ascendlifequest/questseed/internal/platform/otel"
	"github.com/ascendlifequest/questseed/internal/platform/timeouts"
	"github.com/ascendlifequest/questseed/internal/quest"
	"github.com/ascendlifequest/questseed/internal/tools/seed/storage"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc/status"
)

// Callbacks receive the outcome of each document write. Exactly one of them
// is invoked per dispatched document.
type Callbacks struct {
	OnSuccess func(doc quest.Document)
	OnFailure func(doc quest.Document, err error)
}

// Uploader dispatches fixture documents to a DocumentWriter.
type Uploader struct {
	writer       DocumentWriter
	logger       *zap.SugaredLogger
	ledger       UploadRecorder
	runID        string
	callbacks    Callbacks
	writeTimeout time.Duration
	tracer       trace.Tracer
	now          func() time.Time
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithLogger sets the logger used by the default callbacks.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(u *Uploader) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// WithLedger records every write outcome in the given store.
func WithLedger(ledger UploadRecorder) Option {
	return func(u *Uploader) {
		u.ledger = ledger
	}
}

// WithRunID tags ledger records and log lines with a run identifier.
func WithRunID(runID string) Option {
	return func(u *Uploader) {
		u.runID = runID
	}
}

// WithCallbacks adds callbacks invoked after the default logging ones.
func WithCallbacks(callbacks Callbacks) Option {
	return func(u *Uploader) {
		u.callbacks = callbacks
	}
}

// WithWriteTimeout overrides the per-document write timeout. Zero disables it.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(u *Uploader) {
		u.writeTimeout = timeout
	}
}

// NewUploader builds an uploader around writer.
func NewUploader(writer DocumentWriter, opts ...Option) *Uploader {
	u := &Uploader{
		writer:       writer,
		logger:       logging.Nop(),
		writeTimeout: timeouts.DocumentWrite,
		tracer:       platformotel.Tracer("seed"),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Pending tracks writes dispatched by UploadFakeData.
type Pending struct {
	wg         sync.WaitGroup
	dispatched atomic.Int64
}

// Wait blocks until every dispatched write has reported its outcome.
func (p *Pending) Wait() {
	p.wg.Wait()
}

// Dispatched returns the number of writes issued.
func (p *Pending) Dispatched() int {
	return int(p.dispatched.Load())
}

// UploadFakeData dispatches one write per quest, then one per category, and
// returns without waiting for any of them. Write failures are reported only
// through the callbacks.
func (u *Uploader) UploadFakeData(ctx context.Context, fixtures Fixtures) *Pending {
	pending := &Pending{}
	for _, doc := range fixtures.Documents() {
		u.dispatch(ctx, pending, doc)
	}
	u.logger.Debugw("dispatched seed writes", "run_id", u.runID, "count", pending.Dispatched())
	return pending
}

func (u *Uploader) dispatch(ctx context.Context, pending *Pending, doc quest.Document) {
	pending.wg.Add(1)
	pending.dispatched.Add(1)
	go func() {
		defer pending.wg.Done()
		if err := u.write(ctx, doc); err != nil {
			u.onFailure(doc, err)
			return
		}
		u.onSuccess(doc)
	}()
}

func (u *Uploader) write(ctx context.Context, doc quest.Document) error {
	ctx, span := u.tracer.Start(ctx, "seed.set_document", trace.WithAttributes(
		attribute.String("seed.collection", doc.Collection),
		attribute.String("seed.document_id", doc.ID),
	))
	defer span.End()

	if u.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.writeTimeout)
		defer cancel()
	}
	err := u.writer.SetDocument(ctx, doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	return err
}

func (u *Uploader) onSuccess(doc quest.Document) {
	u.logger.Infow("document written",
		"run_id", u.runID,
		"path", doc.Path(),
		"label", doc.Label,
	)
	u.record(doc, storage.OutcomeSucceeded, "", nil)
	if u.callbacks.OnSuccess != nil {
		u.callbacks.OnSuccess(doc)
	}
}

func (u *Uploader) onFailure(doc quest.Document, err error) {
	code := apperrors.Classify(err)
	u.logger.Errorw("document write failed",
		"run_id", u.runID,
		"path", doc.Path(),
		"label", doc.Label,
		"code", string(code),
		"grpc_code", status.Code(err).String(),
		"error", err,
	)
	u.record(doc, storage.OutcomeFailed, code, err)
	if u.callbacks.OnFailure != nil {
		u.callbacks.OnFailure(doc, err)
	}
}

// record appends the outcome to the ledger. It runs detached from the
// caller's context so that cancelled writes are still recorded.
func (u *Uploader) record(doc quest.Document, outcome string, code apperrors.Code, cause error) {
	if u.ledger == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.LedgerWrite)
	defer cancel()

	record := storage.UploadRecord{
		RunID:      u.runID,
		Collection: doc.Collection,
		DocumentID: doc.ID,
		Label:      doc.Label,
		Outcome:    outcome,
		ErrorCode:  string(code),
		CreatedAt:  u.now().UTC(),
	}
	if cause != nil {
		record.LastError = cause.Error()
	}
	if err := u.ledger.RecordUpload(ctx, record); err != nil {
		u.logger.Warnw("record upload outcome", "path", doc.Path(), "error", err)
	}
}
