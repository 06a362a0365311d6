package model

import "time"

// Supported language codes for vocabulary entries.
const (
	LanguageEnglish = "en"
	LanguageDutch   = "nl"
	LanguageFrench  = "fr"
)

// SupportedLanguages lists every language the service provisions words for,
// in the order the preset loader walks them.
var SupportedLanguages = []string{LanguageEnglish, LanguageDutch, LanguageFrench}

// IsSupportedLanguage reports whether lang is one of the supported codes.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Word represents one vocabulary entry for one language.
// This is a pure domain model with no database-specific dependencies or tags;
// the repository handles the comma-delimited persistence of the list fields.
type Word struct {
	ID          int64     `json:"id"`
	Word        string    `json:"word"`
	Description string    `json:"description"`
	Synonyms    []string  `json:"synonyms"`
	Antonyms    []string  `json:"antonyms"`
	Jeopardy    string    `json:"jeopardy"`
	Language    string    `json:"language"`
	Age         *int      `json:"age,omitempty"`
	AudioFileID int64     `json:"audio_file_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AudioFile represents one synthesized audio object tracked in the database.
// Deleting an audio file cascades to the words that reference it.
type AudioFile struct {
	ID         int64     `json:"id"`
	StorageKey string    `json:"storage_key"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
