package seed

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"text/tabwriter"

	"github.com/ascendlifequest/questseed/internal/platform/logging"
	"github.com/ascendlifequest/questseed/internal/quest"
	"github.com/ascendlifequest/questseed/internal/tools/seed/storage"
	"github.com/ascendlifequest/questseed/internal/tools/seed/storage/sqlite"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds seed runner configuration.
type Config struct {
	Firestore    FirestoreConfig
	FixturesFile string `env:"FIXTURES_FILE"`
	LedgerPath   string `env:"LEDGER_PATH"`
	Only         string
	DryRun       bool
}

// DefaultConfig returns configuration with common defaults.
func DefaultConfig() Config {
	return Config{
		Firestore: FirestoreConfig{DatabaseID: DefaultDatabaseID},
		Only:      OnlyAll,
	}
}

type writeCloser interface {
	DocumentWriter
	Close() error
}

type ledgerStore interface {
	storage.UploadStore
	Close() error
}

// Replaced in tests.
var (
	openFirestoreWriter = func(ctx context.Context, cfg FirestoreConfig) (writeCloser, error) {
		return OpenFirestore(ctx, cfg)
	}
	openLedger = func(ctx context.Context, path string) (ledgerStore, error) {
		return sqlite.Open(ctx, path)
	}
	newRunID = func() string { return uuid.NewString() }
)

// LoadConfiguredFixtures returns the fixture file named by cfg, or the
// built-in fixtures when none is set.
func LoadConfiguredFixtures(cfg Config) (Fixtures, error) {
	if path := strings.TrimSpace(cfg.FixturesFile); path != "" {
		return LoadFixtures(path)
	}
	return DefaultFixtures(), nil
}

// Run uploads the collections of fixtures selected by cfg.Only and waits for every write to report back before
// releasing the client. Individual write failures are logged and recorded,
// never returned.
func Run(ctx context.Context, cfg Config, fixtures Fixtures, out io.Writer, logger *zap.SugaredLogger) error {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = logging.Nop()
	}
	fixtures, err := fixtures.Select(cfg.Only)
	if err != nil {
		return err
	}

	var writer DocumentWriter
	if cfg.DryRun {
		writer = NewDryRunWriter(out)
	} else {
		client, err := openFirestoreWriter(ctx, cfg.Firestore)
		if err != nil {
			return fmt.Errorf("open firestore: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.Warnw("close firestore client", "error", err)
			}
		}()
		writer = client
	}

	runID := newRunID()
	opts := []Option{WithLogger(logger), WithRunID(runID)}
	if path := strings.TrimSpace(cfg.LedgerPath); path != "" {
		ledger, err := openLedger(ctx, path)
		if err != nil {
			return fmt.Errorf("open ledger: %w", err)
		}
		defer func() {
			if err := ledger.Close(); err != nil {
				logger.Warnw("close ledger", "error", err)
			}
		}()
		opts = append(opts, WithLedger(ledger))
	}

	var succeeded, failed atomic.Int64
	opts = append(opts, WithCallbacks(Callbacks{
		OnSuccess: func(quest.Document) { succeeded.Add(1) },
		OnFailure: func(quest.Document, error) { failed.Add(1) },
	}))

	logger.Infow("seeding started",
		"run_id", runID,
		"project", cfg.Firestore.ProjectID,
		"database", cfg.Firestore.DatabaseID,
		"quests", len(fixtures.Quests),
		"categories", len(fixtures.Categories),
		"dry_run", cfg.DryRun,
	)
	pending := NewUploader(writer, opts...).UploadFakeData(ctx, fixtures)
	pending.Wait()
	logger.Infow("seeding finished",
		"run_id", runID,
		"dispatched", pending.Dispatched(),
		"succeeded", succeeded.Load(),
		"failed", failed.Load(),
	)
	return nil
}

// ListFixtures prints the documents a run would write.
func ListFixtures(out io.Writer, fixtures Fixtures) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAME\tDETAILS")
	for _, q := range fixtures.Quests {
		fmt.Fprintf(tw, "%s/%s\t%s\tcategorie=%d xp=%d %dmin meteo=%t\n",
			quest.QuestCollection, q.DocumentID(), q.Name, q.CategoryID, q.XPReward, q.DurationMinutes(), q.WeatherDependent)
	}
	for _, c := range fixtures.Categories {
		fmt.Fprintf(tw, "%s/%s\t%s\ticon=%s color=%s\n",
			quest.CategoryCollection, c.DocumentID(), c.Name, c.Icon, c.Color)
	}
	return tw.Flush()
}

// PrintHistory prints the newest ledger records.
func PrintHistory(ctx context.Context, path string, limit int, out io.Writer) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("ledger path is required for history")
	}
	ledger, err := openLedger(ctx, path)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer ledger.Close()

	records, err := ledger.ListUploads(ctx, limit)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tRUN\tPATH\tOUTCOME\tCODE\tERROR")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s/%s\t%s\t%s\t%s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.RunID, r.Collection, r.DocumentID, r.Outcome, r.ErrorCode, r.LastError)
	}
	return tw.Flush()
}
