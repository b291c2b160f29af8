package quest

import (
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Collection names and document ID prefixes read by the mobile app.
const (
	QuestCollection    = "quest"
	CategoryCollection = "categories"

	QuestDocPrefix    = "quest_"
	CategoryDocPrefix = "categorie_"
)

// Document is one record ready to be written to the document database.
type Document struct {
	Collection string
	ID         string
	// Label is a human-readable name used in logs.
	Label  string
	Fields map[string]any
}

// Path returns the document path relative to the database root.
func (d Document) Path() string {
	return d.Collection + "/" + d.ID
}

func documentID(prefix string, id int) string {
	return prefix + strconv.Itoa(id)
}

// normalizeText keeps accented fixture names ("Jeux Vidéo") in one canonical
// form regardless of how the source file was encoded.
func normalizeText(value string) string {
	return norm.NFC.String(value)
}
