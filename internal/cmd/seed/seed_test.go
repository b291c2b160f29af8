package seed

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ascendlifequest/questseed/internal/tools/seed"
	"github.com/ascendlifequest/questseed/internal/tools/seed/generator"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Preset != generator.PresetDemo {
		t.Fatalf("expected demo preset, got %q", cfg.Preset)
	}
	if cfg.Seed.Firestore.DatabaseID != "(default)" {
		t.Fatalf("database = %q, want (default)", cfg.Seed.Firestore.DatabaseID)
	}
	if cfg.Seed.Only != seed.OnlyAll {
		t.Fatalf("only = %q, want all", cfg.Seed.Only)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
}

func TestParseConfigEnvDefaults(t *testing.T) {
	t.Setenv("QUESTSEED_PROJECT_ID", "ascend-life-quest")
	t.Setenv("QUESTSEED_DATABASE_ID", "staging")
	t.Setenv("QUESTSEED_LEDGER_PATH", "data/seed.db")
	t.Setenv("QUESTSEED_LOG_FORMAT", "json")

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed.Firestore.ProjectID != "ascend-life-quest" {
		t.Fatalf("project = %q", cfg.Seed.Firestore.ProjectID)
	}
	if cfg.Seed.Firestore.DatabaseID != "staging" {
		t.Fatalf("database = %q", cfg.Seed.Firestore.DatabaseID)
	}
	if cfg.Seed.LedgerPath != "data/seed.db" {
		t.Fatalf("ledger = %q", cfg.Seed.LedgerPath)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("log format = %q", cfg.Logging.Format)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("QUESTSEED_PROJECT_ID", "from-env")

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-project", "from-flag",
		"-only", "quests",
		"-generate", "-preset", "stress-test", "-seed", "42", "-count", "5",
		"-dry-run", "-v",
	})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed.Firestore.ProjectID != "from-flag" {
		t.Fatalf("project = %q, want from-flag", cfg.Seed.Firestore.ProjectID)
	}
	if cfg.Seed.Only != seed.OnlyQuests || !cfg.Seed.DryRun {
		t.Fatalf("seed config = %+v", cfg.Seed)
	}
	if !cfg.Generate || cfg.Preset != generator.PresetStressTest || cfg.RandSeed != 42 || cfg.Count != 5 {
		t.Fatalf("generation config = %+v", cfg)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("verbose log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestParseConfigListFlag(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-list"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.List {
		t.Fatal("expected list flag to be true")
	}
}

func TestParseConfigUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-scenario", "basic"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown only", mutate: func(c *Config) { c.Seed.Only = "users" }, wantErr: true},
		{name: "unknown preset ignored without generate", mutate: func(c *Config) { c.Preset = "session-heavy" }},
		{name: "unknown preset", mutate: func(c *Config) { c.Generate = true; c.Preset = "session-heavy" }, wantErr: true},
		{name: "negative count", mutate: func(c *Config) { c.Count = -1 }, wantErr: true},
		{name: "negative history", mutate: func(c *Config) { c.History = -2 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Seed: seed.DefaultConfig(), Preset: generator.PresetDemo}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("validate: %v", err)
			}
		})
	}
}

func TestRunList(t *testing.T) {
	cfg := testConfig()
	cfg.List = true
	cfg.Seed.Only = seed.OnlyCategories

	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "categories/categorie_4") {
		t.Fatalf("listing missing categories:\n%s", text)
	}
	if strings.Contains(text, "quest/quest_1") {
		t.Fatalf("listing should not include quests:\n%s", text)
	}
	if !strings.Contains(text, "stress-test") {
		t.Fatalf("listing missing presets:\n%s", text)
	}
}

func TestRunListGenerated(t *testing.T) {
	cfg := testConfig()
	cfg.List = true
	cfg.Generate = true
	cfg.Preset = generator.PresetVariety
	cfg.RandSeed = 3

	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "quest/quest_1000") || !strings.Contains(out.String(), "quest/quest_1011") {
		t.Fatalf("listing missing generated quests:\n%s", out.String())
	}
	if strings.Contains(out.String(), "quest/quest_1012") {
		t.Fatalf("listing has too many generated quests:\n%s", out.String())
	}
}

func TestRunDryRun(t *testing.T) {
	cfg := testConfig()
	cfg.Seed.DryRun = true

	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != 16 {
		t.Fatalf("dry-run lines = %d, want 16", got)
	}
}

func TestRunDryRunWithLedgerAndHistory(t *testing.T) {
	ledgerPath := filepath.Join(t.TempDir(), "seed.db")
	cfg := testConfig()
	cfg.Seed.DryRun = true
	cfg.Seed.LedgerPath = ledgerPath
	cfg.Seed.Only = seed.OnlyCategories

	if err := Run(context.Background(), cfg, &bytes.Buffer{}, nil); err != nil {
		t.Fatalf("run: %v", err)
	}

	history := testConfig()
	history.Seed.LedgerPath = ledgerPath
	history.History = 10
	var out bytes.Buffer
	if err := Run(context.Background(), history, &out, nil); err != nil {
		t.Fatalf("history: %v", err)
	}
	if got := strings.Count(out.String(), "succeeded"); got != 4 {
		t.Fatalf("history succeeded rows = %d, want 4:\n%s", got, out.String())
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Generate = true
	cfg.Preset = "unknown"
	if err := Run(context.Background(), cfg, nil, nil); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestRunInvalidLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Logging.Level = "loud"
	if err := Run(context.Background(), cfg, nil, nil); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestRunMissingFixtureFile(t *testing.T) {
	cfg := testConfig()
	cfg.Seed.FixturesFile = filepath.Join(t.TempDir(), "missing.json")
	err := Run(context.Background(), cfg, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "load fixtures") {
		t.Fatalf("error = %v, want load fixtures error", err)
	}
}

func TestRunGenerateWithoutFixtureCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quests.json")
	data := `{"quests": [{"id": 20, "categorie": 7, "nom": "Jouer du piano", "xpRapporte": 110}]}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixtures: %v", err)
	}
	cfg := testConfig()
	cfg.Seed.FixturesFile = path
	cfg.Seed.DryRun = true
	cfg.Generate = true
	cfg.Preset = generator.PresetVariety
	cfg.RandSeed = 5

	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.Count(out.String(), `"path":"quest/`); got != 12 {
		t.Fatalf("generated quest lines = %d, want 12:\n%s", got, out.String())
	}
	if strings.Contains(out.String(), `"path":"categories/`) {
		t.Fatalf("built-in categories should not be written:\n%s", out.String())
	}
}

func TestRunWritesLogsToErrOut(t *testing.T) {
	cfg := testConfig()
	cfg.Logging.Level = "info"
	cfg.Seed.DryRun = true

	var errOut bytes.Buffer
	if err := Run(context.Background(), cfg, &bytes.Buffer{}, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(errOut.String(), "seeding finished") {
		t.Fatalf("logs missing run summary:\n%s", errOut.String())
	}
}

func TestRunLogsFixtureErrorMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	data := `{
  "quests": [{"id": 20, "categorie": 9, "nom": "Jouer du piano"}],
  "categories": [{"id": 5, "nom": "Musique", "icon": "icon_musique", "color": "#FF3366CC"}]
}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixtures: %v", err)
	}
	cfg := testConfig()
	cfg.Seed.FixturesFile = path

	var errOut bytes.Buffer
	if err := Run(context.Background(), cfg, nil, &errOut); err == nil {
		t.Fatal("expected error for unknown category")
	}
	logs := errOut.String()
	for _, want := range []string{`"code":"FIXTURE_UNKNOWN_CATEGORY"`, `"quest_id":"20"`, `"category_id":"9"`} {
		if !strings.Contains(logs, want) {
			t.Fatalf("logs missing %s:\n%s", want, logs)
		}
	}
}

func testConfig() Config {
	cfg := Config{Seed: seed.DefaultConfig(), Preset: generator.PresetDemo}
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "json"
	return cfg
}
