package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"codecraft-api/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		GeminiBaseURL: baseURL,
		GeminiModel:   "gemini-2.0-flash",
		GeminiAPIKey:  "test-key",
	}
}

func TestGenerateTextSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotReq GenerateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := GenerateResponse{
			Candidates: []Candidate{{
				Content: Content{Parts: []Part{{Text: "Halo! Ada yang bisa saya bantu?"}}},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	fetcher := NewFetcher(testConfig(srv.URL), zap.NewNop())
	text, err := fetcher.GenerateText(context.Background(), "Apa itu closure?")
	require.NoError(t, err)
	assert.Equal(t, "Halo! Ada yang bisa saya bantu?", text)

	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	require.Len(t, gotReq.Contents, 1)
	require.Len(t, gotReq.Contents[0].Parts, 1)
	prompt := gotReq.Contents[0].Parts[0].Text
	assert.True(t, strings.HasSuffix(prompt, "Pertanyaan: Apa itu closure?"))
	assert.Contains(t, prompt, "Idin Code AI Assistant")
}

func TestGenerateTextNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	fetcher := NewFetcher(testConfig(srv.URL), zap.NewNop())
	_, err := fetcher.GenerateText(context.Background(), "Halo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGenerateTextNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	fetcher := NewFetcher(testConfig(srv.URL), zap.NewNop())
	_, err := fetcher.GenerateText(context.Background(), "Halo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGenerateTextMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	fetcher := NewFetcher(testConfig(srv.URL), zap.NewNop())
	_, err := fetcher.GenerateText(context.Background(), "Halo")
	assert.Error(t, err)
}
