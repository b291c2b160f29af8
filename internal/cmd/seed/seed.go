// Package seed parses seed command flags and runs the Firestore seeder.
package seed

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	entrypoint "github.com/ascendlifequest/questseed/internal/platform/cmd"
	apperrors "github.com/ascendlifequest/questseed/internal/platform/errors"
	"github.com/ascendlifequest/questseed/internal/platform/logging"
	"github.com/ascendlifequest/questseed/internal/quest"
	"github.com/ascendlifequest/questseed/internal/tools/seed"
	"github.com/ascendlifequest/questseed/internal/tools/seed/generator"
	"go.uber.org/zap"
)

// Config holds seed command configuration.
type Config struct {
	Seed     seed.Config
	Logging  logging.Config
	List     bool
	Generate bool
	Preset   generator.Preset
	RandSeed int64
	Count    int
	History  int
	Verbose  bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		Seed:    seed.DefaultConfig(),
		Logging: logging.Config{Level: "info", Format: logging.FormatConsole},
	}
	preset := string(generator.PresetDemo)

	fs.StringVar(&cfg.Seed.Firestore.ProjectID, "project", cfg.Seed.Firestore.ProjectID, "Firebase project ID")
	fs.StringVar(&cfg.Seed.Firestore.DatabaseID, "database", cfg.Seed.Firestore.DatabaseID, "Firestore database ID")
	fs.StringVar(&cfg.Seed.Firestore.CredentialsFile, "credentials", cfg.Seed.Firestore.CredentialsFile, "service account JSON file (default: application default credentials)")
	fs.StringVar(&cfg.Seed.Firestore.EmulatorHost, "emulator-host", cfg.Seed.Firestore.EmulatorHost, "Firestore emulator host:port")
	fs.StringVar(&cfg.Seed.FixturesFile, "fixtures", cfg.Seed.FixturesFile, "JSON fixture file replacing the built-in quests and categories")
	fs.StringVar(&cfg.Seed.Only, "only", cfg.Seed.Only, "collections to write (all, quests, categories)")
	fs.BoolVar(&cfg.Seed.DryRun, "dry-run", false, "print documents as JSON lines instead of writing them")
	fs.StringVar(&cfg.Seed.LedgerPath, "ledger", cfg.Seed.LedgerPath, "SQLite file recording upload outcomes (empty disables)")
	fs.BoolVar(&cfg.List, "list", false, "list the documents that would be written")
	fs.BoolVar(&cfg.Generate, "generate", false, "generate quests instead of using the fixture quests")
	fs.StringVar(&preset, "preset", preset, "generation preset (demo, variety, stress-test)")
	fs.Int64Var(&cfg.RandSeed, "seed", 0, "random seed for reproducibility (0 = random)")
	fs.IntVar(&cfg.Count, "count", 0, "quests to generate per category (0 = use preset default)")
	fs.IntVar(&cfg.History, "history", 0, "print the last N ledger records and exit")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format (console, json)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	// Environment values replace the bound defaults; explicit flags win.
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	cfg.Preset = generator.Preset(preset)
	if cfg.Verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// Validate rejects flag combinations the command cannot run.
func (c Config) Validate() error {
	if err := seed.ValidateOnly(c.Seed.Only); err != nil {
		return err
	}
	if c.Generate {
		if _, err := generator.ParsePreset(string(c.Preset)); err != nil {
			return err
		}
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative")
	}
	if c.History < 0 {
		return fmt.Errorf("history must not be negative")
	}
	return nil
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.History > 0 {
		return seed.PrintHistory(ctx, cfg.Seed.LedgerPath, cfg.History, out)
	}

	logger, err := logging.New(cfg.Logging, errOut)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	fixtures, err := buildFixtures(cfg, logger)
	if err != nil {
		logFixtureError(logger, err)
		return fmt.Errorf("load fixtures: %w", err)
	}

	if cfg.List {
		selected, err := fixtures.Select(cfg.Seed.Only)
		if err != nil {
			return err
		}
		if err := seed.ListFixtures(out, selected); err != nil {
			return err
		}
		fmt.Fprintln(out, "\nAvailable presets (for -generate):")
		fmt.Fprintln(out, "  demo         - 1 quest per category")
		fmt.Fprintln(out, "  variety      - 3 quests per category")
		fmt.Fprintln(out, "  stress-test  - 50 quests per category")
		return nil
	}

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSeed, entrypoint.RunOptions{
		OnShutdownError: func(err error) {
			fmt.Fprintf(errOut, "otel shutdown: %v\n", err)
		},
	}, func(ctx context.Context) error {
		return seed.Run(ctx, cfg.Seed, fixtures, out, logger.Named("seed"))
	})
}

// buildFixtures loads the configured fixtures and, when generating, replaces
// their quests with generated ones for the same categories. A fixture set
// without categories generates against the built-in categories, which are
// not uploaded unless the set provides them.
func buildFixtures(cfg Config, logger *zap.SugaredLogger) (seed.Fixtures, error) {
	fixtures, err := seed.LoadConfiguredFixtures(cfg.Seed)
	if err != nil {
		return seed.Fixtures{}, err
	}
	if !cfg.Generate {
		return fixtures, nil
	}
	categories := fixtures.Categories
	if len(categories) == 0 {
		categories = quest.Categories()
		logger.Infow("fixtures have no categories, generating for the built-in ones", "categories", len(categories))
	}
	gen := generator.New(generator.Config{
		Preset: cfg.Preset,
		Seed:   cfg.RandSeed,
		Count:  cfg.Count,
	}, logger.Named("generator"))
	fixtures.Quests = gen.Quests(categories)
	return fixtures, nil
}

// logFixtureError logs the metadata of a coded fixture error, which names
// the offending records.
func logFixtureError(logger *zap.SugaredLogger, err error) {
	var coded *apperrors.Error
	if !errors.As(err, &coded) {
		return
	}
	keysAndValues := []any{"code", string(coded.Code)}
	for key, value := range coded.Metadata {
		keysAndValues = append(keysAndValues, key, value)
	}
	logger.Errorw("invalid fixtures", keysAndValues...)
}
