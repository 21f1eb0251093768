package narrator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ollama/ollama/api"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"althistory/internal/model"
	"althistory/internal/narrator"
)

func newOpenAIClient(t *testing.T, handler http.HandlerFunc) narrator.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := narrator.New(narrator.Config{
		Provider: "openai",
		APIKey:   "test-key",
		Model:    "gpt-4",
		BaseURL:  srv.URL + "/v1",
		Timeout:  5 * time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func writeCompletion(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	body, err := json.Marshal(openai.ChatCompletionResponse{
		ID:     "chatcmpl-1",
		Object: "chat.completion",
		Model:  "gpt-4",
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	})
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := narrator.New(narrator.Config{Provider: "gemini"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown narration provider")
}

func TestGenerateChoicesReturnsRawText(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	client := newOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		writeCompletion(t, w, "anything, even prose the caller must interpret")
	})

	raw, err := client.GenerateChoices(context.Background(), "choice prompt")
	require.NoError(t, err)
	assert.Equal(t, "anything, even prose the caller must interpret", raw)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "expert historian")
	assert.Equal(t, openai.ChatMessageRoleUser, gotReq.Messages[1].Role)
	assert.Equal(t, "choice prompt", gotReq.Messages[1].Content)
	assert.Equal(t, 500, gotReq.MaxTokens)
	assert.InDelta(t, 0.7, gotReq.Temperature, 0.001)
}

func TestGenerateChoicesServiceFailure(t *testing.T) {
	client := newOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit_error"}}`))
	})

	_, err := client.GenerateChoices(context.Background(), "prompt")
	assert.ErrorIs(t, err, model.ErrServiceFailure)
}

func TestGenerateChoicesEmptyCompletion(t *testing.T) {
	client := newOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(t, w, "")
	})

	_, err := client.GenerateChoices(context.Background(), "prompt")
	assert.ErrorIs(t, err, model.ErrServiceFailure)
}

func TestGenerateConsequence(t *testing.T) {
	t.Run("decodes structured reply", func(t *testing.T) {
		var gotReq openai.ChatCompletionRequest
		client := newOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			writeCompletion(t, w, `{"new_situation":"The senate convenes.","alterations":["Rome reforms"],"is_ending":false}`)
		})

		got, err := client.GenerateConsequence(context.Background(), "consequence prompt")
		require.NoError(t, err)
		assert.Equal(t, "The senate convenes.", got.NewSituation)
		assert.Equal(t, []string{"Rome reforms"}, got.Alterations)
		assert.False(t, got.IsEnding)
		assert.Equal(t, 800, gotReq.MaxTokens)
	})

	t.Run("decodes fenced reply", func(t *testing.T) {
		client := newOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeCompletion(t, w, "```json\n{\"new_situation\":\"Peace holds.\",\"is_ending\":true}\n```")
		})

		got, err := client.GenerateConsequence(context.Background(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, "Peace holds.", got.NewSituation)
		assert.True(t, got.IsEnding)
	})

	t.Run("malformed reply", func(t *testing.T) {
		client := newOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeCompletion(t, w, "the battle rages on, but I forgot the JSON")
		})

		_, err := client.GenerateConsequence(context.Background(), "prompt")
		assert.ErrorIs(t, err, model.ErrMalformedResponse)
	})

	t.Run("transport failure", func(t *testing.T) {
		client := newOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.GenerateConsequence(context.Background(), "prompt")
		assert.ErrorIs(t, err, model.ErrServiceFailure)
	})
}

func newOllamaTestClient(t *testing.T, handler http.HandlerFunc) narrator.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := narrator.New(narrator.Config{
		Provider:  "ollama",
		Model:     "llama3",
		OllamaURL: srv.URL,
		Timeout:   5 * time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestOllamaProvider(t *testing.T) {
	t.Run("returns raw text", func(t *testing.T) {
		client := newOllamaTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/chat", r.URL.Path)
			body, err := json.Marshal(api.ChatResponse{
				Model:   "llama3",
				Message: api.Message{Role: "assistant", Content: `{"choices":[]}`},
				Done:    true,
			})
			require.NoError(t, err)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(body)
		})

		raw, err := client.GenerateChoices(context.Background(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, `{"choices":[]}`, raw)
	})

	t.Run("server error maps to service failure", func(t *testing.T) {
		client := newOllamaTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"model not loaded"}`))
		})

		_, err := client.GenerateChoices(context.Background(), "prompt")
		assert.ErrorIs(t, err, model.ErrServiceFailure)
	})
}
