// Package worldbuilder generates French quest names and content for
// seeding the quest catalog with varied data.
package worldbuilder

import (
	"math/rand"
	"strings"
	"time"

	"github.com/ascendlifequest/questseed/internal/quest"
)

// Draft is a generated quest without its identifiers.
type Draft struct {
	Name               string
	Description        string
	RequiredPreference int
	XPReward           int
	Duration           time.Duration
	WeatherDependent   bool
}

// WorldBuilder picks quest content from per-category templates.
type WorldBuilder struct {
	rng *rand.Rand
}

// New creates a WorldBuilder with the given random source.
func New(rng *rand.Rand) *WorldBuilder {
	return &WorldBuilder{rng: rng}
}

// Quest drafts a quest for category. Categories without templates get a
// generic "Quête <nom>" draft.
func (w *WorldBuilder) Quest(category quest.Category) Draft {
	templates, ok := categoryTemplates[category.ID]
	if !ok || len(templates) == 0 {
		return w.fallback(category)
	}
	tpl := templates[w.rng.Intn(len(templates))]
	return Draft{
		Name:               tpl.name,
		Description:        tpl.description,
		RequiredPreference: 1 + w.rng.Intn(3),
		XPReward:           w.xp(tpl.minutes),
		Duration:           time.Duration(tpl.minutes) * time.Minute,
		WeatherDependent:   tpl.outdoor,
	}
}

func (w *WorldBuilder) fallback(category quest.Category) Draft {
	name := strings.TrimSpace(category.Name)
	if name == "" {
		name = "libre"
	}
	minutes := durationSteps[w.rng.Intn(len(durationSteps))]
	return Draft{
		Name:               "Quête " + name,
		Description:        fallbackDescriptions[w.rng.Intn(len(fallbackDescriptions))],
		RequiredPreference: 1 + w.rng.Intn(3),
		XPReward:           w.xp(minutes),
		Duration:           time.Duration(minutes) * time.Minute,
	}
}

// xp scales the reward with the effort: two points per minute plus a bonus,
// rounded to the nearest ten.
func (w *WorldBuilder) xp(minutes int) int {
	raw := minutes*2 + 20 + w.rng.Intn(41)
	return (raw + 5) / 10 * 10
}
