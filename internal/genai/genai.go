package genai

import (
	"context"
	"errors"
)

// Package genai contains the text- and speech-generation clients used by the
// word-provisioning workflow. The service layer depends only on these
// interfaces; the OpenAI-backed implementation lives in this package too.

// ErrEmptyCompletion is returned when the upstream model answers without any
// usable content.
var ErrEmptyCompletion = errors.New("empty completion from model")

// TextGenerator produces text from a system instruction and a user prompt.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// SpeechGenerator synthesizes audio bytes for the given input text.
type SpeechGenerator interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
