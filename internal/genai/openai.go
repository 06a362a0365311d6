package genai

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"linguaweb/internal/config"
)

// OpenAI implements TextGenerator and SpeechGenerator on top of the OpenAI
// API. The client is safe for concurrent use; one instance is shared across
// all requests.
type OpenAI struct {
	client   *openai.Client
	gptModel string
	ttsModel string
	voice    string
}

var (
	_ TextGenerator   = (*OpenAI)(nil)
	_ SpeechGenerator = (*OpenAI)(nil)
)

// NewOpenAI creates the OpenAI-backed generation client.
func NewOpenAI(cfg config.OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	return &OpenAI{
		client:   openai.NewClient(cfg.APIKey),
		gptModel: cfg.GPTModel,
		ttsModel: cfg.TTSModel,
		voice:    cfg.Voice,
	}, nil
}

// newOpenAIWithBaseURL is used by tests to point the client at a stub server.
func newOpenAIWithBaseURL(cfg config.OpenAIConfig, baseURL string) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = baseURL
	return &OpenAI{
		client:   openai.NewClientWithConfig(clientCfg),
		gptModel: cfg.GPTModel,
		ttsModel: cfg.TTSModel,
		voice:    cfg.Voice,
	}
}

// Generate runs a chat completion with the given system instruction and user
// prompt and returns the model's text response.
func (o *OpenAI) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.gptModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Synthesize converts text to mp3 audio bytes using the configured TTS model
// and voice.
func (o *OpenAI) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.ttsModel),
		Input:          text,
		Voice:          openai.SpeechVoice(o.voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read speech response: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrEmptyCompletion
	}
	return audio, nil
}
