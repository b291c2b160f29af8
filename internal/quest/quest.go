package quest

import "time"

// Quest document keys.
const (
	FieldID                 = "id"
	FieldCategory           = "categorie"
	FieldName               = "nom"
	FieldDescription        = "description"
	FieldRequiredPreference = "preferenceRequis"
	FieldXPReward           = "xpRapporte"
	FieldDuration           = "tempsNecessaire"
	FieldWeatherDependent   = "dependantMeteo"
)

// Quest is a gamified task that rewards experience points on completion.
type Quest struct {
	ID                 int
	CategoryID         int
	Name               string
	Description        string
	RequiredPreference int
	XPReward           int
	Duration           time.Duration
	WeatherDependent   bool
	// Completed is local progress state and is never uploaded.
	Completed bool
}

// DurationMinutes returns the estimated duration in whole minutes.
func (q Quest) DurationMinutes() int64 {
	return int64(q.Duration / time.Minute)
}

// DocumentID returns the quest document key, e.g. "quest_12".
func (q Quest) DocumentID() string {
	return documentID(QuestDocPrefix, q.ID)
}

// Fields maps the quest onto the document fields read by the mobile app.
func (q Quest) Fields() map[string]any {
	return map[string]any{
		FieldID:                 q.ID,
		FieldCategory:           q.CategoryID,
		FieldName:               normalizeText(q.Name),
		FieldDescription:        normalizeText(q.Description),
		FieldRequiredPreference: q.RequiredPreference,
		FieldXPReward:           q.XPReward,
		FieldDuration:           q.DurationMinutes(),
		FieldWeatherDependent:   q.WeatherDependent,
	}
}

// Document returns the quest as a write-ready document.
func (q Quest) Document() Document {
	return Document{
		Collection: QuestCollection,
		ID:         q.DocumentID(),
		Label:      q.Name,
		Fields:     q.Fields(),
	}
}
