package ai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"safelink/backend/internal/service/ai"
)

func TestOpenAIProvider_ChatEndpoint(t *testing.T) {
	server := newOpenAITestServer(t)
	defer server.Close()

	provider, err := ai.NewOpenAIProvider("key", server.URL+"/v1/", "gpt-4o-mini", "chat/completions", false, "")
	require.NoError(t, err)

	testAndCompleteProvider(t, provider, "chat-response")
}

func TestOpenAIProvider_ResponsesEndpoint(t *testing.T) {
	server := newOpenAITestServer(t)
	defer server.Close()

	provider, err := ai.NewOpenAIProvider("key", server.URL+"/v1/", "gpt-4o-mini", "responses", false, "")
	require.NoError(t, err)

	testAndCompleteProvider(t, provider, "response-text")
}

func TestCompatibleProvider_ChatEndpoint(t *testing.T) {
	server := newOpenAITestServer(t)
	defer server.Close()

	provider, err := ai.NewCompatibleProvider("key", server.URL+"/v1/", "qwen")
	require.NoError(t, err)
	require.Equal(t, ai.ProviderCompatible, provider.Name())

	testAndCompleteProvider(t, provider, "chat-response")
}

func TestAnthropicProvider_MessageEndpoint(t *testing.T) {
	server := newAnthropicTestServer(t)
	defer server.Close()

	provider, err := ai.NewAnthropicProvider("key", server.URL+"/", "claude-3-sonnet", 0)
	require.NoError(t, err)

	testAndCompleteProvider(t, provider, "claude-response")
}

func TestGeminiProvider_GenerateContent(t *testing.T) {
	server := newGeminiTestServer(t)
	defer server.Close()

	provider, err := ai.NewGeminiProvider(context.Background(), "key", server.URL+"/", "gemini-2.5-flash")
	require.NoError(t, err)

	testAndCompleteProvider(t, provider, "gemini-response")
}

func TestGeminiProvider_RequiresKey(t *testing.T) {
	_, err := ai.NewGeminiProvider(context.Background(), "", "", "")
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)
}

func TestProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	provider, err := ai.NewCompatibleProvider("key", server.URL+"/v1/", "m")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = provider.Complete(ctx, "", "hi")
	require.Error(t, err)
}

func testAndCompleteProvider(t *testing.T, provider ai.Provider, expected string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := provider.Test(ctx)
	require.NoError(t, err)
	require.Equal(t, expected, got)

	got, err = provider.Complete(ctx, "sys", "content")
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func newOpenAITestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = readBody(t, r)
		switch r.URL.Path {
		case "/v1/chat/completions":
			writeOpenAIChatResponse(w)
		case "/v1/responses":
			writeOpenAIResponse(w)
		default:
			http.NotFound(w, r)
		}
	}))
}

func newAnthropicTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			http.NotFound(w, r)
			return
		}
		_ = readBody(t, r)
		writeAnthropicMessage(w)
	}))
}

func newGeminiTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-2.5-flash:generateContent") {
			http.NotFound(w, r)
			return
		}
		_ = readBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []interface{}{
				map[string]interface{}{
					"content": map[string]interface{}{
						"role":  "model",
						"parts": []interface{}{map[string]interface{}{"text": "gemini-response"}},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
}

func readBody(t *testing.T, r *http.Request) []byte {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	_ = r.Body.Close()
	return body
}

func writeOpenAIChatResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]interface{}{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini",
		"choices": []interface{}{
			map[string]interface{}{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": "chat-response",
					"refusal": "",
				},
				"logprobs": map[string]interface{}{
					"content": []interface{}{},
					"refusal": []interface{}{},
				},
			},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func writeOpenAIResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]interface{}{
		"id":                 "resp-1",
		"created_at":         1,
		"error":              map[string]interface{}{"code": "server_error", "message": ""},
		"incomplete_details": map[string]interface{}{"reason": ""},
		"instructions":       "",
		"metadata":           map[string]interface{}{},
		"model":              "gpt-4o-mini",
		"object":             "response",
		"output": []interface{}{
			map[string]interface{}{
				"id":     "item-1",
				"type":   "message",
				"role":   "assistant",
				"status": "completed",
				"content": []interface{}{
					map[string]interface{}{
						"type":        "output_text",
						"text":        "response-text",
						"annotations": []interface{}{},
						"logprobs":    []interface{}{},
					},
				},
			},
		},
		"parallel_tool_calls": false,
		"temperature":         0,
		"tool_choice":         "auto",
		"tools":               []interface{}{},
		"top_p":               1,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func writeAnthropicMessage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]interface{}{
		"id":            "msg-1",
		"type":          "message",
		"role":          "assistant",
		"model":         "claude-3-sonnet",
		"content":       []interface{}{map[string]interface{}{"type": "text", "text": "claude-response"}},
		"stop_reason":   "end_turn",
		"stop_sequence": "",
		"usage": map[string]interface{}{
			"input_tokens":  1,
			"output_tokens": 1,
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}
