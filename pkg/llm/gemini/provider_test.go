package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSendsPromptAndDecodesResponse(t *testing.T) {
	var gotPath, gotKey string
	var gotReq geminiChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		res := geminiChatResponse{
			Candidates: []*geminiChatCandidate{
				{
					Content: &geminiChatContent{
						Parts: []*geminiChatParts{{Text: "generated text"}},
						Role:  "model",
					},
				},
			},
		}
		json.NewEncoder(w).Encode(res)
	}))
	defer srv.Close()

	provider := NewProvider("test-key", "gemini-1.5-flash")
	provider.BaseURL = srv.URL

	text, err := provider.Generate(context.Background(), "summarize this")
	require.NoError(t, err)

	assert.Equal(t, "generated text", text)
	assert.Equal(t, "/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotReq.Contents, 1)
	require.Len(t, gotReq.Contents[0].Parts, 1)
	assert.Equal(t, "summarize this", gotReq.Contents[0].Parts[0].Text)
	assert.Equal(t, "user", gotReq.Contents[0].Role)
}

func TestGenerateNonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "quota exceeded"}`))
	}))
	defer srv.Close()

	provider := NewProvider("test-key", "gemini-1.5-flash")
	provider.BaseURL = srv.URL

	_, err := provider.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateEmptyCandidatesIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiChatResponse{})
	}))
	defer srv.Close()

	provider := NewProvider("test-key", "gemini-1.5-flash")
	provider.BaseURL = srv.URL

	_, err := provider.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
