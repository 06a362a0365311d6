package repository

import (
	"context"

	"linguaweb/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// WordRepository defines data access for words and their audio files using
// SQL queries only. No business logic here — strictly persistence operations.
type WordRepository interface {
	// CreateWord inserts a new word row and returns the stored record,
	// including DB-assigned id and timestamps. When a row with the same
	// (word, language, age) was committed concurrently, the existing row is
	// returned instead of an error, which makes creation idempotent under
	// races.
	CreateWord(ctx context.Context, w *model.Word) (*model.Word, error)

	// FindWordByText returns the first word row whose text matches exactly
	// (case-sensitive). Returns sql.ErrNoRows when absent.
	FindWordByText(ctx context.Context, word string) (*model.Word, error)

	// FindWordByID returns a word by its ID. Returns sql.ErrNoRows when absent.
	FindWordByID(ctx context.Context, id int64) (*model.Word, error)

	// ListWordIDs returns the IDs of all words matching the filter, in id order.
	ListWordIDs(ctx context.Context, f WordFilter) ([]int64, error)

	// GetOrCreateAudioFile returns the audio file row for the storage key,
	// inserting it first when absent.
	GetOrCreateAudioFile(ctx context.Context, storageKey string) (*model.AudioFile, error)

	// FindAudioFileByID returns an audio file by its ID. Returns sql.ErrNoRows when absent.
	FindAudioFileByID(ctx context.Context, id int64) (*model.AudioFile, error)
}

// WordFilter holds the optional equality predicates for ListWordIDs.
// Zero values mean "no filter".
type WordFilter struct {
	Language string
	Age      int
}
