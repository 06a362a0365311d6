package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linguaweb/internal/config"
)

func testConfig() config.OpenAIConfig {
	return config.OpenAIConfig{
		APIKey:   "test-key",
		GPTModel: "gpt-4-1106-preview",
		TTSModel: "tts-1",
		Voice:    "onyx",
	}
}

func chatResponse(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4-1106-preview",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestNewOpenAI(t *testing.T) {
	_, err := NewOpenAI(config.OpenAIConfig{})
	assert.Error(t, err)

	client, err := NewOpenAI(testConfig())
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestOpenAI_Generate(t *testing.T) {
	t.Run("returns trimmed completion", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/chat/completions", r.URL.Path)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			messages := req["messages"].([]any)
			require.Len(t, messages, 2)
			assert.Equal(t, "system", messages[0].(map[string]any)["role"])
			assert.Equal(t, "user", messages[1].(map[string]any)["role"])

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(chatResponse("  A small domesticated feline.  "))
		}))
		defer srv.Close()

		client := newOpenAIWithBaseURL(testConfig(), srv.URL)
		out, err := client.Generate(context.Background(), "Describe the word.", "cat")
		require.NoError(t, err)
		assert.Equal(t, "A small domesticated feline.", out)
	})

	t.Run("empty completion is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(chatResponse(""))
		}))
		defer srv.Close()

		client := newOpenAIWithBaseURL(testConfig(), srv.URL)
		_, err := client.Generate(context.Background(), "Describe the word.", "cat")
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	})

	t.Run("api error propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := newOpenAIWithBaseURL(testConfig(), srv.URL)
		_, err := client.Generate(context.Background(), "Describe the word.", "cat")
		assert.Error(t, err)
	})
}

func TestOpenAI_Synthesize(t *testing.T) {
	t.Run("returns audio bytes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/audio/speech", r.URL.Path)
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write([]byte("mp3-bytes"))
		}))
		defer srv.Close()

		client := newOpenAIWithBaseURL(testConfig(), srv.URL)
		audio, err := client.Synthesize(context.Background(), "cat")
		require.NoError(t, err)
		assert.Equal(t, []byte("mp3-bytes"), audio)
	})

	t.Run("empty body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "audio/mpeg")
		}))
		defer srv.Close()

		client := newOpenAIWithBaseURL(testConfig(), srv.URL)
		_, err := client.Synthesize(context.Background(), "cat")
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	})
}
