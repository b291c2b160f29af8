// Package generator builds quest sets for seeding beyond the fixed demo
// fixtures.
package generator

import (
	"math/rand"

	"github.com/ascendlifequest/questseed/internal/platform/logging"
	"github.com/ascendlifequest/questseed/internal/quest"
	"github.com/ascendlifequest/questseed/internal/tools/seed/worldbuilder"
	"go.uber.org/zap"
)

// FirstGeneratedID is the first quest ID handed out. The app assigns new
// quest IDs as max+1 starting from 1000, so generated quests never collide
// with hand-written fixtures below that.
const FirstGeneratedID = 1000

// Config holds configuration for the generator.
type Config struct {
	Preset Preset
	Seed   int64
	Count  int // Override preset's per-category count (0 = use preset default)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Preset: PresetDemo}
}

// Generator produces quests for a fixed set of categories.
type Generator struct {
	config       Config
	rng          *rand.Rand
	wb           *worldbuilder.WorldBuilder
	nameRegistry *nameRegistry
	nextID       int
}

// New creates a Generator. A nil logger discards output.
func New(cfg Config, logger *zap.SugaredLogger) *Generator {
	if logger == nil {
		logger = logging.Nop()
	}
	rng := NewSeededRNG(cfg.Seed, logger)
	return &Generator{
		config:       cfg,
		rng:          rng,
		wb:           worldbuilder.New(rng),
		nameRegistry: newNameRegistry(),
		nextID:       FirstGeneratedID,
	}
}

// Quests generates quests for every category, category by category.
func (g *Generator) Quests(categories []quest.Category) []quest.Quest {
	perCategory := g.config.Count
	if perCategory <= 0 {
		perCategory = GetPresetConfig(g.config.Preset).QuestsPerCategory
	}

	quests := make([]quest.Quest, 0, perCategory*len(categories))
	for _, category := range categories {
		for i := 0; i < perCategory; i++ {
			quests = append(quests, g.quest(category))
		}
	}
	return quests
}

func (g *Generator) quest(category quest.Category) quest.Quest {
	draft := g.wb.Quest(category)
	q := quest.Quest{
		ID:                 g.nextID,
		CategoryID:         category.ID,
		Name:               g.nameRegistry.uniqueName(draft.Name),
		Description:        draft.Description,
		RequiredPreference: draft.RequiredPreference,
		XPReward:           draft.XPReward,
		Duration:           draft.Duration,
		WeatherDependent:   draft.WeatherDependent,
	}
	g.nextID++
	return q
}
