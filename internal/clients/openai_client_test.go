package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*openAIClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewOpenAIClient("test-key", "gpt-4o-mini", 0.7).(*openAIClient)
	client.baseURL = server.URL
	return client, server
}

func TestGenerateJSONSuccess(t *testing.T) {
	var captured OpenAIRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(OpenAIResponse{
			Choices: []Choice{{Message: OpenAIMessage{Role: "assistant", Content: `{"ok": true}`}}},
		})
	})

	content, err := client.GenerateJSON(context.Background(), "sistema", "usuário")
	require.NoError(t, err)

	assert.Equal(t, `{"ok": true}`, content)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Equal(t, 0.7, captured.Temperature)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "sistema", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestGenerateTextUsesTextFormat(t *testing.T) {
	var captured OpenAIRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(OpenAIResponse{
			Choices: []Choice{{Message: OpenAIMessage{Content: "texto livre"}}},
		})
	})

	content, err := client.GenerateText(context.Background(), "s", "u")
	require.NoError(t, err)

	assert.Equal(t, "texto livre", content)
	assert.Equal(t, "text", captured.ResponseFormat.Type)
}

func TestGenerateJSONAPIErrorEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(OpenAIResponse{
			Error: &APIError{Message: "Incorrect API key", Type: "invalid_request_error", Code: "invalid_api_key"},
		})
	})

	_, err := client.GenerateJSON(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_api_key")
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestGenerateJSONNonJSONErrorBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway"))
	})

	_, err := client.GenerateJSON(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestGenerateJSONNoChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(OpenAIResponse{})
	})

	_, err := client.GenerateJSON(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGenerateJSONWithoutKeySkipsNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewOpenAIClient("", "gpt-4o-mini", 0.7).(*openAIClient)
	client.baseURL = server.URL

	_, err := client.GenerateJSON(context.Background(), "s", "u")

	assert.ErrorIs(t, err, ErrNoAPIKey)
	assert.Zero(t, requests)
}

func TestGenerateJSONContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(OpenAIResponse{
			Choices: []Choice{{Message: OpenAIMessage{Content: "x"}}},
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GenerateJSON(ctx, "s", "u")
	assert.Error(t, err)
}
