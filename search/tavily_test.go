package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTavily_Search(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "Paris", "url": "https://example.com/paris", "published_date": "2023-06-01", "content": "Capital of France"},
				{"url": "https://example.com/untitled"},
			},
		})
	}))
	defer server.Close()

	tavily := NewTavily("test-key", WithEndpoint(server.URL))
	results, err := tavily.Search(context.Background(), "capital of france", 8)
	require.NoError(t, err)

	assert.Equal(t, "capital of france", gotBody["query"])
	assert.Equal(t, "test-key", gotBody["api_key"])
	assert.Equal(t, "basic", gotBody["depth"])
	assert.Equal(t, float64(8), gotBody["max_results"])

	require.Len(t, results, 2)
	assert.Equal(t, "Paris", results[0].Title)
	assert.Equal(t, "https://example.com/paris", results[0].URL)
	assert.Equal(t, "2023-06-01", results[0].PublishedDate)
	assert.Equal(t, "Capital of France", results[0].Snippet)
	assert.Empty(t, results[1].Title)
	assert.Empty(t, results[1].PublishedDate)
}

func TestTavily_Search_TruncatesToMaxResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "one"}, {"title": "two"}, {"title": "three"},
			},
		})
	}))
	defer server.Close()

	tavily := NewTavily("test-key", WithEndpoint(server.URL))
	results, err := tavily.Search(context.Background(), "q", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestTavily_Search_MissingAPIKey(t *testing.T) {
	tavily := NewTavily("  ")
	_, err := tavily.Search(context.Background(), "q", 5)
	assert.ErrorContains(t, err, "API key")
}

func TestTavily_Search_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	tavily := NewTavily("bad-key", WithEndpoint(server.URL))
	_, err := tavily.Search(context.Background(), "q", 5)
	assert.ErrorContains(t, err, "401")
}

func TestTavily_Search_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{}})
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tavily := NewTavily("test-key", WithEndpoint(server.URL))
	_, err := tavily.Search(ctx, "q", 5)
	assert.Error(t, err)
}

func TestTavily_WithDepth(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{}})
	}))
	defer server.Close()

	tavily := NewTavily("test-key", WithEndpoint(server.URL), WithDepth("advanced"))
	_, err := tavily.Search(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Equal(t, "advanced", gotBody["depth"])
}
