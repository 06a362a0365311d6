package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_audio_files",
		SQL: `CREATE TABLE IF NOT EXISTS audio_files (
  id          BIGINT      GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  storage_key TEXT        NOT NULL UNIQUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_words",
		SQL: `CREATE TABLE IF NOT EXISTS words (
  id            BIGINT       GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  word          VARCHAR(64)  NOT NULL,
  description   VARCHAR(1024) NOT NULL,
  synonyms      VARCHAR(1024) NOT NULL,
  antonyms      VARCHAR(1024) NOT NULL,
  jeopardy      VARCHAR(1024) NOT NULL,
  language      VARCHAR(16)  NOT NULL,
  age           INTEGER,
  audio_file_id BIGINT       NOT NULL REFERENCES audio_files (id) ON DELETE CASCADE,
  created_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
  CONSTRAINT uq_words_word_language_age UNIQUE NULLS NOT DISTINCT (word, language, age)
);`,
	},
	{
		Name: "create_index_words_word",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_words_word ON words (word);`,
	},
	{
		Name: "create_index_words_language",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_words_language ON words (language);`,
	},
	{
		Name: "create_index_words_audio_file_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_words_audio_file_id ON words (audio_file_id);`,
	},
}

// EnsureMigrated checks if the 'words' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	start := time.Now()

	log := logger.With().Str("component", "database").Logger()
	log.Info().Str("event", "db_migration_check").Msg("checking schema")

	var exists bool
	query := "SELECT to_regclass('public.words') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_migration_failed").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().
				Str("event", "db_migration_failed").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_migration_step").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("migration complete")

	return nil
}
