package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/ascendlifequest/questseed/internal/platform/errors"
	"github.com/ascendlifequest/questseed/internal/quest"
)

// Collection selections accepted by Fixtures.Select.
const (
	OnlyAll        = "all"
	OnlyQuests     = "quests"
	OnlyCategories = "categories"
)

// Fixtures is the set of records uploaded by one seed run.
type Fixtures struct {
	Quests     []quest.Quest
	Categories []quest.Category
}

// DefaultFixtures returns the built-in demo data.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Quests:     quest.Quests(),
		Categories: quest.Categories(),
	}
}

// Documents returns every fixture as a document, quests first.
func (f Fixtures) Documents() []quest.Document {
	docs := make([]quest.Document, 0, len(f.Quests)+len(f.Categories))
	for _, q := range f.Quests {
		docs = append(docs, q.Document())
	}
	for _, c := range f.Categories {
		docs = append(docs, c.Document())
	}
	return docs
}

// Select keeps only the requested collection.
func (f Fixtures) Select(only string) (Fixtures, error) {
	switch strings.TrimSpace(only) {
	case "", OnlyAll:
		return f, nil
	case OnlyQuests:
		return Fixtures{Quests: f.Quests}, nil
	case OnlyCategories:
		return Fixtures{Categories: f.Categories}, nil
	default:
		return Fixtures{}, ValidateOnly(only)
	}
}

// ValidateOnly rejects unknown collection selections.
func ValidateOnly(only string) error {
	switch strings.TrimSpace(only) {
	case "", OnlyAll, OnlyQuests, OnlyCategories:
		return nil
	}
	return fmt.Errorf("unknown collection selection %q (valid: all, quests, categories)", only)
}

// Validate reports duplicate IDs, empty names and quests pointing at a
// category that is not part of the set. A set without categories skips the
// reference check since the categories may already exist remotely.
func (f Fixtures) Validate() error {
	categoryIDs := make(map[int]bool, len(f.Categories))
	for _, c := range f.Categories {
		if categoryIDs[c.ID] {
			return apperrors.New(apperrors.CodeFixtureDuplicateID, "duplicate category id "+strconv.Itoa(c.ID))
		}
		categoryIDs[c.ID] = true
		if strings.TrimSpace(c.Name) == "" {
			return apperrors.New(apperrors.CodeFixtureInvalid, "category "+strconv.Itoa(c.ID)+" has no name")
		}
	}

	questIDs := make(map[int]bool, len(f.Quests))
	for _, q := range f.Quests {
		if questIDs[q.ID] {
			return apperrors.New(apperrors.CodeFixtureDuplicateID, "duplicate quest id "+strconv.Itoa(q.ID))
		}
		questIDs[q.ID] = true
		if strings.TrimSpace(q.Name) == "" {
			return apperrors.New(apperrors.CodeFixtureInvalid, "quest "+strconv.Itoa(q.ID)+" has no name")
		}
		if len(f.Categories) > 0 && !categoryIDs[q.CategoryID] {
			return apperrors.WithMetadata(
				apperrors.CodeFixtureUnknownCategory,
				fmt.Sprintf("quest %d references unknown category %d", q.ID, q.CategoryID),
				map[string]string{"quest_id": strconv.Itoa(q.ID), "category_id": strconv.Itoa(q.CategoryID)},
			)
		}
	}
	return nil
}

// fixtureFile is the JSON layout of a fixture override file. Keys match the
// document fields so an export of the collections can be fed back in.
type fixtureFile struct {
	Quests     []questFixture    `json:"quests"`
	Categories []categoryFixture `json:"categories"`
}

type questFixture struct {
	ID                 int    `json:"id"`
	Category           int    `json:"categorie"`
	Name               string `json:"nom"`
	Description        string `json:"description"`
	RequiredPreference int    `json:"preferenceRequis"`
	XPReward           int    `json:"xpRapporte"`
	DurationMinutes    int64  `json:"tempsNecessaire"`
	WeatherDependent   bool   `json:"dependantMeteo"`
}

type categoryFixture struct {
	ID    int    `json:"id"`
	Name  string `json:"nom"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// LoadFixtures reads and validates a JSON fixture file.
func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	fixtures, err := ParseFixtures(data)
	if err != nil {
		return Fixtures{}, fmt.Errorf("fixtures %s: %w", path, err)
	}
	return fixtures, nil
}

// ParseFixtures decodes and validates JSON fixture data.
func ParseFixtures(data []byte) (Fixtures, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var file fixtureFile
	if err := decoder.Decode(&file); err != nil {
		return Fixtures{}, apperrors.Wrap(apperrors.CodeFixtureInvalid, "decode fixtures", err)
	}

	fixtures := Fixtures{
		Quests:     make([]quest.Quest, 0, len(file.Quests)),
		Categories: make([]quest.Category, 0, len(file.Categories)),
	}
	for _, q := range file.Quests {
		if q.DurationMinutes < 0 {
			return Fixtures{}, apperrors.New(apperrors.CodeFixtureInvalid, fmt.Sprintf("quest %d has a negative duration", q.ID))
		}
		fixtures.Quests = append(fixtures.Quests, quest.Quest{
			ID:                 q.ID,
			CategoryID:         q.Category,
			Name:               q.Name,
			Description:        q.Description,
			RequiredPreference: q.RequiredPreference,
			XPReward:           q.XPReward,
			Duration:           time.Duration(q.DurationMinutes) * time.Minute,
			WeatherDependent:   q.WeatherDependent,
		})
	}
	for _, c := range file.Categories {
		color, err := quest.ColorFromHex(c.Color)
		if err != nil {
			return Fixtures{}, apperrors.Wrap(apperrors.CodeFixtureInvalid, fmt.Sprintf("category %d", c.ID), err)
		}
		fixtures.Categories = append(fixtures.Categories, quest.Category{
			ID:    c.ID,
			Name:  c.Name,
			Icon:  c.Icon,
			Color: color,
		})
	}

	if err := fixtures.Validate(); err != nil {
		return Fixtures{}, err
	}
	return fixtures, nil
}
