package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"linguaweb/internal/genai"
	"linguaweb/internal/model"
	"linguaweb/internal/preset"
	"linguaweb/internal/repository"
	"linguaweb/internal/storage"
)

var (
	ErrWordRequired        = errors.New("word is required")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrNotFound            = errors.New("word not found")
)

// guessPunctuation is trimmed from both ends of a guess and of the stored
// word before comparison. Internal whitespace and accents are left alone.
const guessPunctuation = `.,?!;:'"`

// WordService defines the use cases for provisioning and querying words.
type WordService interface {
	// Provision returns the stored record for word, generating text fields
	// and pronunciation audio and persisting them when the word is new.
	// Sequential calls for the same word are idempotent; concurrent calls are
	// arbitrated by the database's uniqueness constraint.
	Provision(ctx context.Context, word, language string) (*model.Word, error)

	// ProvisionPresets provisions the default word list of every supported
	// language. maxPerLanguage truncates each list when > 0. Results preserve
	// list order; the first failure cancels outstanding work.
	ProvisionPresets(ctx context.Context, maxPerLanguage int) ([]model.Word, error)

	// ListIDs returns the ids of all stored words matching the optional
	// language and age filters (zero values mean no filter).
	ListIDs(ctx context.Context, language string, age int) ([]int64, error)

	// Get returns a single word record by id.
	Get(ctx context.Context, id int64) (*model.Word, error)

	// CheckGuess compares a guess against the stored word, ignoring case,
	// surrounding whitespace, and surrounding punctuation.
	CheckGuess(ctx context.Context, id int64, guess string) (bool, error)

	// DownloadAudio returns the synthesized pronunciation audio for a word.
	DownloadAudio(ctx context.Context, id int64) ([]byte, error)
}

// Options tune the provisioning workflows.
type Options struct {
	// Voice is the TTS voice identifier, part of every storage key.
	Voice string
	// ProvisionTimeout bounds the generation fan-out of one word.
	ProvisionTimeout time.Duration
	// PresetConcurrency bounds how many words the preset loader provisions
	// at once, so a full preset load cannot open an unbounded number of
	// simultaneous upstream calls.
	PresetConcurrency int
	Logger            zerolog.Logger
}

type wordService struct {
	repo        repository.WordRepository
	store       storage.Storage
	textGen     genai.TextGenerator
	speechGen   genai.SpeechGenerator
	prompts     *genai.Prompts
	voice       string
	timeout     time.Duration
	presetLimit int
	log         zerolog.Logger
}

// NewWordService constructs a new WordService.
func NewWordService(
	repo repository.WordRepository,
	store storage.Storage,
	textGen genai.TextGenerator,
	speechGen genai.SpeechGenerator,
	prompts *genai.Prompts,
	opts Options,
) WordService {
	if opts.Voice == "" {
		opts.Voice = "onyx"
	}
	if opts.ProvisionTimeout <= 0 {
		opts.ProvisionTimeout = 60 * time.Second
	}
	if opts.PresetConcurrency <= 0 {
		opts.PresetConcurrency = 8
	}
	return &wordService{
		repo:        repo,
		store:       store,
		textGen:     textGen,
		speechGen:   speechGen,
		prompts:     prompts,
		voice:       opts.Voice,
		timeout:     opts.ProvisionTimeout,
		presetLimit: opts.PresetConcurrency,
		log:         opts.Logger,
	}
}

// generatedTexts collects the four text fields produced for a new word.
type generatedTexts struct {
	description string
	synonyms    string
	antonyms    string
	jeopardy    string
}

func (s *wordService) Provision(ctx context.Context, word, language string) (*model.Word, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrWordRequired
	}
	if !model.IsSupportedLanguage(language) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	existing, err := s.repo.FindWordByText(ctx, word)
	if err == nil {
		s.log.Debug().Str("word", word).Int64("id", existing.ID).Msg("word already exists")
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lookup word: %w", err)
	}

	// Resolve prompts before any upstream call so a misconfigured language
	// fails fast.
	taskPrompts, err := s.prompts.TaskPrompts(language)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Str("word", word).Str("language", language).Msg("generating word content")

	gctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		texts generatedTexts
		audio []byte
	)
	g, gctx := errgroup.WithContext(gctx)
	g.Go(func() (err error) {
		texts.description, err = s.textGen.Generate(gctx, taskPrompts.Description, word)
		return err
	})
	g.Go(func() (err error) {
		texts.synonyms, err = s.textGen.Generate(gctx, taskPrompts.Synonyms, word)
		return err
	})
	g.Go(func() (err error) {
		texts.antonyms, err = s.textGen.Generate(gctx, taskPrompts.Antonyms, word)
		return err
	})
	g.Go(func() (err error) {
		texts.jeopardy, err = s.textGen.Generate(gctx, taskPrompts.Jeopardy, word)
		return err
	})
	g.Go(func() (err error) {
		audio, err = s.speechGen.Synthesize(gctx, word)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generate content for %q: %w", word, err)
	}

	key := fmt.Sprintf("%s_%s_%s.mp3", word, s.voice, language)

	audioFile, err := s.repo.GetOrCreateAudioFile(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("audio file row: %w", err)
	}

	if _, err := s.store.Put(ctx, key, bytes.NewReader(audio), storage.PutObjectOptions{
		Size:        int64(len(audio)),
		ContentType: "audio/mpeg",
	}); err != nil {
		return nil, fmt.Errorf("store audio: %w", err)
	}

	stored, err := s.repo.CreateWord(ctx, &model.Word{
		Word:        word,
		Description: texts.description,
		Synonyms:    splitGenerated(texts.synonyms),
		Antonyms:    splitGenerated(texts.antonyms),
		Jeopardy:    texts.jeopardy,
		Language:    language,
		AudioFileID: audioFile.ID,
	})
	if err != nil {
		// Rollback: delete the object from storage so no orphaned blob remains.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	s.log.Debug().Str("word", word).Int64("id", stored.ID).Msg("word added")
	return stored, nil
}

func (s *wordService) ProvisionPresets(ctx context.Context, maxPerLanguage int) ([]model.Word, error) {
	type entry struct {
		word     string
		language string
	}

	var entries []entry
	for _, language := range model.SupportedLanguages {
		words, err := preset.Words(language)
		if err != nil {
			return nil, err
		}
		if maxPerLanguage > 0 && len(words) > maxPerLanguage {
			words = words[:maxPerLanguage]
		}
		for _, w := range words {
			entries = append(entries, entry{word: w, language: language})
		}
	}

	s.log.Debug().Int("count", len(entries)).Msg("provisioning preset words")

	// Results are written by position so the returned order matches the
	// preset lists regardless of completion order.
	results := make([]*model.Word, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.presetLimit)
	for i, e := range entries {
		g.Go(func() error {
			w, err := s.Provision(gctx, e.word, e.language)
			if err != nil {
				return fmt.Errorf("preset %q (%s): %w", e.word, e.language, err)
			}
			results[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]model.Word, len(results))
	for i, w := range results {
		out[i] = *w
	}
	return out, nil
}

func (s *wordService) ListIDs(ctx context.Context, language string, age int) ([]int64, error) {
	return s.repo.ListWordIDs(ctx, repository.WordFilter{Language: language, Age: age})
}

func (s *wordService) Get(ctx context.Context, id int64) (*model.Word, error) {
	w, err := s.repo.FindWordByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *wordService) CheckGuess(ctx context.Context, id int64, guess string) (bool, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return sanitizeWord(guess) == sanitizeWord(w.Word), nil
}

func (s *wordService) DownloadAudio(ctx context.Context, id int64) ([]byte, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	audioFile, err := s.repo.FindAudioFileByID(ctx, w.AudioFileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	obj, _, err := s.store.Get(ctx, audioFile.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read audio object: %w", err)
	}
	defer obj.Close()

	audio, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read audio object: %w", err)
	}
	return audio, nil
}

// sanitizeWord lowercases, trims surrounding whitespace, then trims
// surrounding punctuation. Matching order matters: punctuation directly
// inside trailing whitespace is not removed.
func sanitizeWord(word string) string {
	return strings.Trim(strings.TrimSpace(strings.ToLower(word)), guessPunctuation)
}

// splitGenerated turns a model-produced comma-separated list into a slice.
func splitGenerated(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
