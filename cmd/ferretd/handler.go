package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spetersoncode/ferret/workflow"
)

// researchRunner is the slice of the pipeline the handler needs. Tests
// substitute a stub.
type researchRunner interface {
	Run(ctx context.Context, query string) (*workflow.Result, error)
}

// ResearchHandler serves POST /api/deep-research.
type ResearchHandler struct {
	pipeline researchRunner
}

// NewResearchHandler creates a handler backed by the given pipeline.
func NewResearchHandler(pipeline researchRunner) *ResearchHandler {
	return &ResearchHandler{pipeline: pipeline}
}

// ServeHTTP validates the request, runs the pipeline synchronously, and
// writes the result projection. Pipeline failures are reported with full
// error detail: this is a single-tenant debugging-oriented service, not a
// hardened public API.
func (h *ResearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		slog.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Warn("failed to read request body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		slog.Warn("invalid request JSON", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":    "Invalid JSON",
			"details":  err.Error(),
			"raw_data": string(body),
		})
		return
	}

	query, _ := data["query"].(string)
	if strings.TrimSpace(query) == "" {
		slog.Warn("missing query", "payload_keys", len(data))
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":         "A non-empty 'query' is required",
			"received_data": data,
		})
		return
	}

	log := slog.With("query", query)
	log.Info("research request started")

	result, err := h.pipeline.Run(r.Context(), query)
	if err != nil {
		log.Error("research request failed",
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":     "An error occurred during research",
			"details":   err.Error(),
			"traceback": errorTrace(err),
		})
		return
	}

	log.Info("research request completed",
		"duration_ms", time.Since(start).Milliseconds(),
		"source_count", len(result.Sources),
	)
	writeJSON(w, http.StatusOK, result)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorTrace renders the full unwrap chain of an error, one cause per line.
func errorTrace(err error) string {
	var b strings.Builder
	for err != nil {
		if b.Len() > 0 {
			b.WriteString("\ncaused by: ")
		}
		b.WriteString(err.Error())
		err = errors.Unwrap(err)
	}
	return b.String()
}

// corsMiddleware adds CORS headers for cross-origin frontend requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
