package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeminiService(t *testing.T, baseURL string) LLMService {
	t.Helper()
	svc, err := NewGeminiService(GeminiConfig{
		APIKey:  "g-test",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return svc
}

func TestGeminiServiceComplete(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "g-test", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Great CV!"}]}}]}`))
	}))
	defer server.Close()

	out, err := newTestGeminiService(t, server.URL).Complete(context.Background(), "system text", "user text")

	require.NoError(t, err)
	assert.Equal(t, "Great CV!", out)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"systemInstruction"`)
	assert.Contains(t, string(raw), `"system text"`)
	assert.Contains(t, string(raw), `"user text"`)
}

func TestGeminiServiceFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "no candidates",
			status:  http.StatusOK,
			body:    `{"candidates":[]}`,
			wantErr: "no text content in response",
		},
		{
			name:    "empty parts",
			status:  http.StatusOK,
			body:    `{"candidates":[{"content":{"role":"model","parts":[]}}]}`,
			wantErr: "no text content in response",
		},
		{
			name:    "api error",
			status:  http.StatusBadRequest,
			body:    `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`,
			wantErr: "failed to generate text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestGeminiService(t, server.URL).Complete(context.Background(), "s", "u")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGeminiServiceTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, err := newTestGeminiService(t, baseURL).Complete(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate text")
}
