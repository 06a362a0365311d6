package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"linguaweb/internal/model"
	"linguaweb/internal/repository"
)

// WordPostgres is a PostgreSQL implementation of repository.WordRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type WordPostgres struct {
	db *sql.DB
}

// NewWordPostgres creates a new WordPostgres repository.
func NewWordPostgres(db *sql.DB) *WordPostgres {
	return &WordPostgres{db: db}
}

var _ repository.WordRepository = (*WordPostgres)(nil)

const wordColumns = `id, word, description, synonyms, antonyms, jeopardy, language, age, audio_file_id, created_at, updated_at`

// CreateWord inserts a new word row. The unique constraint on
// (word, language, age) is the arbiter for concurrent creates: when another
// transaction commits the same word first, the insert becomes a no-op and the
// committed row is fetched and returned.
func (r *WordPostgres) CreateWord(ctx context.Context, w *model.Word) (*model.Word, error) {
	const q = `
		INSERT INTO words (word, description, synonyms, antonyms, jeopardy, language, age, audio_file_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT ON CONSTRAINT uq_words_word_language_age DO NOTHING
		RETURNING ` + wordColumns
	row := r.db.QueryRowContext(ctx, q,
		w.Word,
		w.Description,
		joinList(w.Synonyms),
		joinList(w.Antonyms),
		w.Jeopardy,
		w.Language,
		ageValue(w.Age),
		w.AudioFileID,
	)

	out, err := scanWord(row)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Conflict: another writer committed the row first. Return theirs.
	const qExisting = `
		SELECT ` + wordColumns + `
		FROM words
		WHERE word = $1 AND language = $2 AND age IS NOT DISTINCT FROM $3
	`
	return scanWord(r.db.QueryRowContext(ctx, qExisting, w.Word, w.Language, ageValue(w.Age)))
}

// FindWordByText fetches the first word row with an exact text match.
func (r *WordPostgres) FindWordByText(ctx context.Context, word string) (*model.Word, error) {
	const q = `
		SELECT ` + wordColumns + `
		FROM words
		WHERE word = $1
		ORDER BY id
		LIMIT 1
	`
	return scanWord(r.db.QueryRowContext(ctx, q, word))
}

// FindWordByID fetches a single word by its ID.
func (r *WordPostgres) FindWordByID(ctx context.Context, id int64) (*model.Word, error) {
	const q = `
		SELECT ` + wordColumns + `
		FROM words
		WHERE id = $1
	`
	return scanWord(r.db.QueryRowContext(ctx, q, id))
}

// ListWordIDs returns the IDs of all matching words in id order.
func (r *WordPostgres) ListWordIDs(ctx context.Context, f repository.WordFilter) ([]int64, error) {
	q := `SELECT id FROM words`
	var conds []string
	var args []any
	if f.Language != "" {
		args = append(args, f.Language)
		conds = append(conds, fmt.Sprintf("language = $%d", len(args)))
	}
	if f.Age != 0 {
		args = append(args, f.Age)
		conds = append(conds, fmt.Sprintf("age = $%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetOrCreateAudioFile inserts the storage key if new and returns the row
// either way. The unique index on storage_key arbitrates concurrent creates.
func (r *WordPostgres) GetOrCreateAudioFile(ctx context.Context, storageKey string) (*model.AudioFile, error) {
	const qInsert = `
		INSERT INTO audio_files (storage_key)
		VALUES ($1)
		ON CONFLICT (storage_key) DO NOTHING
		RETURNING id, storage_key, created_at, updated_at
	`
	af, err := scanAudioFile(r.db.QueryRowContext(ctx, qInsert, storageKey))
	if err == nil {
		return af, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	const qExisting = `
		SELECT id, storage_key, created_at, updated_at
		FROM audio_files
		WHERE storage_key = $1
	`
	return scanAudioFile(r.db.QueryRowContext(ctx, qExisting, storageKey))
}

// FindAudioFileByID fetches a single audio file by its ID.
func (r *WordPostgres) FindAudioFileByID(ctx context.Context, id int64) (*model.AudioFile, error) {
	const q = `
		SELECT id, storage_key, created_at, updated_at
		FROM audio_files
		WHERE id = $1
	`
	return scanAudioFile(r.db.QueryRowContext(ctx, q, id))
}

func scanWord(row *sql.Row) (*model.Word, error) {
	var (
		w        model.Word
		synonyms string
		antonyms string
		age      sql.NullInt64
	)
	if err := row.Scan(
		&w.ID,
		&w.Word,
		&w.Description,
		&synonyms,
		&antonyms,
		&w.Jeopardy,
		&w.Language,
		&age,
		&w.AudioFileID,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	w.Synonyms = splitList(synonyms)
	w.Antonyms = splitList(antonyms)
	if age.Valid {
		v := int(age.Int64)
		w.Age = &v
	}
	return &w, nil
}

func scanAudioFile(row *sql.Row) (*model.AudioFile, error) {
	var af model.AudioFile
	if err := row.Scan(&af.ID, &af.StorageKey, &af.CreatedAt, &af.UpdatedAt); err != nil {
		return nil, err
	}
	return &af, nil
}

func ageValue(age *int) any {
	if age == nil {
		return nil
	}
	return *age
}

// joinList and splitList implement the comma-delimited persistence of the
// synonym/antonym columns.
func joinList(v []string) string {
	return strings.Join(v, ",")
}

func splitList(v string) []string {
	if v == "" {
		return []string{}
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
