package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/spetersoncode/ferret"
	"github.com/spetersoncode/ferret/workflow"
)

type stubRunner struct {
	result *workflow.Result
	err    error
}

func (s *stubRunner) Run(ctx context.Context, query string) (*workflow.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func post(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/deep-research", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestResearchHandler_Success(t *testing.T) {
	handler := NewResearchHandler(&stubRunner{result: &workflow.Result{
		Query:       "What is the capital of France?",
		FinalAnswer: "Paris.",
		Sources: []ai.Source{
			{Title: "Paris", URL: "https://example.com/paris", PublishedDate: "Unknown Date"},
		},
		WorkflowPath: []string{
			"Research phase completed.",
			"Synthesis phase completed.",
			"Answer drafting phase completed.",
		},
	}})

	rec := post(t, handler, `{"query": "What is the capital of France?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "What is the capital of France?", resp["query"])
	assert.Equal(t, "Paris.", resp["final_answer"])
	assert.Len(t, resp["workflow_path"], 3)
	assert.Len(t, resp["sources"], 1)
}

func TestResearchHandler_InvalidJSON(t *testing.T) {
	handler := NewResearchHandler(&stubRunner{})

	rec := post(t, handler, `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid JSON", resp["error"])
	assert.NotEmpty(t, resp["details"])
	assert.Equal(t, `{not json`, resp["raw_data"])
}

func TestResearchHandler_MissingQuery(t *testing.T) {
	handler := NewResearchHandler(&stubRunner{})

	for _, body := range []string{`{}`, `{"query": ""}`, `{"query": "   "}`, `{"query": 42}`} {
		rec := post(t, handler, body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "A non-empty 'query' is required", resp["error"])
	}
}

func TestResearchHandler_PipelineError(t *testing.T) {
	inner := errors.New("model overloaded")
	handler := NewResearchHandler(&stubRunner{
		err: &workflow.StageError{Stage: "answer", Err: inner},
	})

	rec := post(t, handler, `{"query": "tides"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "An error occurred during research", resp["error"])
	assert.Contains(t, resp["details"], "model overloaded")
	assert.Contains(t, resp["traceback"], "caused by: model overloaded")
}

func TestResearchHandler_MethodNotAllowed(t *testing.T) {
	handler := NewResearchHandler(&stubRunner{})

	req := httptest.NewRequest(http.MethodGet, "/api/deep-research", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestErrorTrace(t *testing.T) {
	err := &workflow.StageError{
		Stage: "research",
		Err:   errors.New("search is down"),
	}
	trace := errorTrace(err)
	assert.Contains(t, trace, `stage "research" failed`)
	assert.Contains(t, trace, "caused by: search is down")
}
