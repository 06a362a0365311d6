package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"linguaweb/internal/model"
	"linguaweb/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wordCols = []string{"id", "word", "description", "synonyms", "antonyms", "jeopardy", "language", "age", "audio_file_id", "created_at", "updated_at"}

func wordRow(id int64) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(wordCols).
		AddRow(id, "cat", "A small feline.", "kitty,feline", "dog", "This pet purrs.", "en", nil, int64(7), now, now)
}

func newRepo(t *testing.T) (*WordPostgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWordPostgres(db), mock
}

func TestWordPostgres_CreateWord(t *testing.T) {
	ctx := context.Background()

	word := &model.Word{
		Word:        "cat",
		Description: "A small feline.",
		Synonyms:    []string{"kitty", "feline"},
		Antonyms:    []string{"dog"},
		Jeopardy:    "This pet purrs.",
		Language:    "en",
		AudioFileID: 7,
	}

	t.Run("inserts new row", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("INSERT INTO words").
			WithArgs("cat", "A small feline.", "kitty,feline", "dog", "This pet purrs.", "en", nil, int64(7)).
			WillReturnRows(wordRow(1))

		out, err := repo.CreateWord(ctx, word)

		require.NoError(t, err)
		assert.Equal(t, int64(1), out.ID)
		assert.Equal(t, []string{"kitty", "feline"}, out.Synonyms)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict returns existing row", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("INSERT INTO words").
			WithArgs("cat", "A small feline.", "kitty,feline", "dog", "This pet purrs.", "en", nil, int64(7)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery("SELECT (.+) FROM words").
			WithArgs("cat", "en", nil).
			WillReturnRows(wordRow(42))

		out, err := repo.CreateWord(ctx, word)

		require.NoError(t, err)
		assert.Equal(t, int64(42), out.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWordPostgres_FindWordByText(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM words WHERE word =").
			WithArgs("cat").
			WillReturnRows(wordRow(3))

		w, err := repo.FindWordByText(ctx, "cat")

		require.NoError(t, err)
		assert.Equal(t, "cat", w.Word)
		assert.Nil(t, w.Age)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM words WHERE word =").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		w, err := repo.FindWordByText(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, w)
	})
}

func TestWordPostgres_FindWordByID(t *testing.T) {
	ctx := context.Background()
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM words WHERE id =").
		WithArgs(int64(3)).
		WillReturnRows(wordRow(3))

	w, err := repo.FindWordByID(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), w.ID)
}

func TestWordPostgres_ListWordIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("no filter", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("SELECT id FROM words ORDER BY id").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

		ids, err := repo.ListWordIDs(ctx, repository.WordFilter{})

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, ids)
	})

	t.Run("language filter", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery(`SELECT id FROM words WHERE language = \$1 ORDER BY id`).
			WithArgs("en").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		ids, err := repo.ListWordIDs(ctx, repository.WordFilter{Language: "en"})

		require.NoError(t, err)
		assert.Equal(t, []int64{1}, ids)
	})

	t.Run("language and age filter", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery(`SELECT id FROM words WHERE language = \$1 AND age = \$2 ORDER BY id`).
			WithArgs("en", 8).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		ids, err := repo.ListWordIDs(ctx, repository.WordFilter{Language: "en", Age: 8})

		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestWordPostgres_GetOrCreateAudioFile(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	audioCols := []string{"id", "storage_key", "created_at", "updated_at"}

	t.Run("inserts new row", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("INSERT INTO audio_files").
			WithArgs("cat_onyx_en.mp3").
			WillReturnRows(sqlmock.NewRows(audioCols).AddRow(1, "cat_onyx_en.mp3", now, now))

		af, err := repo.GetOrCreateAudioFile(ctx, "cat_onyx_en.mp3")

		require.NoError(t, err)
		assert.Equal(t, int64(1), af.ID)
		assert.Equal(t, "cat_onyx_en.mp3", af.StorageKey)
	})

	t.Run("existing key is fetched", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("INSERT INTO audio_files").
			WithArgs("cat_onyx_en.mp3").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery("SELECT (.+) FROM audio_files WHERE storage_key =").
			WithArgs("cat_onyx_en.mp3").
			WillReturnRows(sqlmock.NewRows(audioCols).AddRow(9, "cat_onyx_en.mp3", now, now))

		af, err := repo.GetOrCreateAudioFile(ctx, "cat_onyx_en.mp3")

		require.NoError(t, err)
		assert.Equal(t, int64(9), af.ID)
	})
}

func TestWordPostgres_FindAudioFileByID(t *testing.T) {
	ctx := context.Background()
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM audio_files WHERE id =").
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	af, err := repo.FindAudioFileByID(ctx, 9)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, af)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, splitList(""))
	assert.Equal(t, []string{"one"}, splitList("one"))
	assert.Equal(t, []string{"one", "two"}, splitList("one, two"))
	assert.Equal(t, "one,two", joinList([]string{"one", "two"}))
}
